package events

import "github.com/jobboardly/backend/internal/entities"

var (
	JobSubmittedTopic         = "JobSubmittedEvent"
	JobModeratedTopic         = "JobModeratedEvent"
	CompanySubmittedTopic     = "CompanySubmittedEvent"
	CompanyModeratedTopic     = "CompanyModeratedEvent"
	UserModeratedTopic        = "UserModeratedEvent"
	ApplicationSubmittedTopic = "ApplicationSubmittedEvent"
	ApplicationUpdatedTopic   = "ApplicationUpdatedEvent"
)

type JobSubmitted struct {
	Job entities.Job
}

type JobModerated struct {
	Job    entities.Job
	Status entities.JobStatus
	Reason *string
}

type CompanySubmitted struct {
	Company entities.Company
}

type CompanyModerated struct {
	Company entities.Company
	Status  entities.CompanyStatus
	Reason  *string
}

type UserModerated struct {
	UserID string
	Status entities.UserStatus
}

type ApplicationSubmitted struct {
	Application entities.Application
	Job         entities.Job
}

type ApplicationUpdated struct {
	Application entities.Application
}
