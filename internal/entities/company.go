package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
)

type CompanyStatus string

const (
	CompanyPending   CompanyStatus = "pending"
	CompanyApproved  CompanyStatus = "approved"
	CompanyRejected  CompanyStatus = "rejected"
	CompanySuspended CompanyStatus = "suspended"
	CompanyDeleted   CompanyStatus = "deleted"
	// CompanyActive is accepted as an intended status from callers and is
	// normalized to CompanyApproved before persisting. It never hits the store.
	CompanyActive CompanyStatus = "active"
)

func ToCompanyStatus(s string) (CompanyStatus, error) {
	switch s {
	case string(CompanyPending):
		return CompanyPending, nil
	case string(CompanyApproved):
		return CompanyApproved, nil
	case string(CompanyRejected):
		return CompanyRejected, nil
	case string(CompanySuspended):
		return CompanySuspended, nil
	case string(CompanyDeleted):
		return CompanyDeleted, nil
	case string(CompanyActive):
		return CompanyActive, nil
	default:
		return "", errors.New("invalid company status")
	}
}

// Company owns its admin and recruiter UID sets; they are the source of truth
// for company-level authorization.
type Company struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Description      string
	AdminUids        string
	RecruiterUids    string
	Status           CompanyStatus
	ModerationReason *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewCompany(id, name, description string, adminUids []string) *Company {
	return &Company{
		ID:          id,
		Name:        name,
		Description: description,
		AdminUids:   strings.Join(adminUids, ","),
		Status:      CompanyPending,
	}
}

func (c *Company) AdminUidsAsArray() []string {
	return splitUids(c.AdminUids)
}

func (c *Company) RecruiterUidsAsArray() []string {
	return splitUids(c.RecruiterUids)
}

func splitUids(uids string) []string {
	if uids == "" {
		return []string{}
	}
	return lo.Map(strings.Split(uids, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
