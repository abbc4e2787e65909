package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobApproved  JobStatus = "approved"
	JobRejected  JobStatus = "rejected"
	JobSuspended JobStatus = "suspended"
)

func ToJobStatus(s string) (JobStatus, error) {
	switch s {
	case string(JobPending):
		return JobPending, nil
	case string(JobApproved):
		return JobApproved, nil
	case string(JobRejected):
		return JobRejected, nil
	case string(JobSuspended):
		return JobSuspended, nil
	default:
		return "", errors.New("invalid job status")
	}
}

type Job struct {
	ID               string `gorm:"primaryKey"`
	CompanyID        string `gorm:"index"`
	Title            string
	Description      string
	Location         string
	Skills           string
	Status           JobStatus
	ModerationReason *string
	SalaryMin        *float64
	SalaryMax        *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	PostedAt         *time.Time
}

func NewJob(id, companyID, title, description, location string, skills []string) *Job {
	now := time.Now()
	return &Job{
		ID:          id,
		CompanyID:   companyID,
		Title:       title,
		Description: description,
		Location:    location,
		Skills:      strings.Join(skills, ","),
		Status:      JobPending,
		PostedAt:    &now,
	}
}

func (j *Job) SkillsAsArray() []string {
	if j.Skills == "" {
		return []string{}
	}
	return lo.Map(strings.Split(j.Skills, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
