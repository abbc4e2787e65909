package entities

import (
	"errors"
	"time"
)

type ApplicationStatus string

const (
	ApplicationApplied      ApplicationStatus = "applied"
	ApplicationReviewed     ApplicationStatus = "reviewed"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationOfferMade    ApplicationStatus = "offerMade"
	ApplicationHired        ApplicationStatus = "hired"
	ApplicationRejected     ApplicationStatus = "rejected"
	ApplicationWithdrawn    ApplicationStatus = "withdrawn"
)

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch s {
	case string(ApplicationApplied):
		return ApplicationApplied, nil
	case string(ApplicationReviewed):
		return ApplicationReviewed, nil
	case string(ApplicationInterviewing):
		return ApplicationInterviewing, nil
	case string(ApplicationOfferMade):
		return ApplicationOfferMade, nil
	case string(ApplicationHired):
		return ApplicationHired, nil
	case string(ApplicationRejected):
		return ApplicationRejected, nil
	case string(ApplicationWithdrawn):
		return ApplicationWithdrawn, nil
	default:
		return "", errors.New("invalid application status")
	}
}

// Application joins a UserProfile to a Job. At most one exists per
// (JobID, ApplicantID) pair; a unique index in the store backs that up.
type Application struct {
	ID            string `gorm:"primaryKey"`
	JobID         string `gorm:"index"`
	ApplicantID   string `gorm:"index"`
	Status        ApplicationStatus
	EmployerNotes *string
	Answers       []ApplicationAnswer `gorm:"foreignKey:ApplicationID"`
	AppliedAt     time.Time
	UpdatedAt     time.Time
}

type ApplicationAnswer struct {
	ID            int `gorm:"primaryKey;autoIncrement"`
	ApplicationID string
	Question      string
	Answer        string
}

func NewApplication(id, jobID, applicantID string, answers []ApplicationAnswer) *Application {
	return &Application{
		ID:          id,
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      ApplicationApplied,
		Answers:     answers,
		AppliedAt:   time.Now(),
	}
}
