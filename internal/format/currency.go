// Package format renders structured profile and job data into the bounded
// natural-language blocks fed to the AI matching prompts. Every renderer is
// total: missing fields become visible placeholders instead of being dropped,
// so the prompt input shape stays stable.
package format

import (
	"math"
	"strconv"
)

const rupee = "₹"

// INR renders an annual amount in Indian notation: crores above 1e7, lakhs
// above 1e5, thousands above 1e3, the raw value below that. nil and NaN render
// as "N/A".
func INR(amount *float64) string {
	if amount == nil || math.IsNaN(*amount) {
		return "N/A"
	}

	value := *amount
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	switch {
	case value >= 1e7:
		return rupee + sign + roundedString(value/1e7, 2) + " Cr"
	case value >= 1e5:
		return rupee + sign + roundedString(value/1e5, 2) + "L"
	case value >= 1e3:
		return rupee + sign + roundedString(value/1e3, 1) + "k"
	default:
		return rupee + sign + strconv.FormatFloat(value, 'f', -1, 64)
	}
}

func roundedString(value float64, decimals int) string {
	factor := math.Pow(10, float64(decimals))
	rounded := math.Round(value*factor) / factor
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
