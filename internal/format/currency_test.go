package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func amount(v float64) *float64 {
	return &v
}

func Test_INR_ScalesByMagnitude(t *testing.T) {

	cases := []struct {
		amount   float64
		expected string
	}{
		{12500000, "₹1.25 Cr"},
		{10000000, "₹1 Cr"},
		{150000, "₹1.5L"},
		{100000, "₹1L"},
		{2500, "₹2.5k"},
		{2000, "₹2k"},
		{500, "₹500"},
		{0, "₹0"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, INR(amount(c.amount)))
	}
}

func Test_INR_NilAndNaN_RenderAsNotAvailable(t *testing.T) {
	assert.Equal(t, "N/A", INR(nil))
	assert.Equal(t, "N/A", INR(amount(math.NaN())))
}

func Test_INR_NegativeAmounts_KeepSign(t *testing.T) {
	assert.Equal(t, "₹-1.5L", INR(amount(-150000)))
	assert.Equal(t, "₹-500", INR(amount(-500)))
}
