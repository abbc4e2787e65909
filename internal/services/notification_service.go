package services

import (
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/events"
	"github.com/jobboardly/backend/internal/logger"
	log "github.com/sirupsen/logrus"
)

type notificationRepository interface {
	Add(ctx context.Context, notification *entities.Notification) error
}

// NotificationService turns domain events into per-user notification records.
// Failures here are logged and never fail the action that raised the event.
type NotificationService struct {
	notifications notificationRepository
	companies     companyReader
}

func NewNotificationService(bus EventBus.Bus, notifications notificationRepository,
	companies companyReader) (*NotificationService, error) {

	s := &NotificationService{notifications: notifications, companies: companies}

	subscriptions := map[string]any{
		events.JobModeratedTopic:         s.onJobModerated,
		events.CompanyModeratedTopic:     s.onCompanyModerated,
		events.UserModeratedTopic:        s.onUserModerated,
		events.ApplicationSubmittedTopic: s.onApplicationSubmitted,
		events.ApplicationUpdatedTopic:   s.onApplicationUpdated,
	}
	for topic, handler := range subscriptions {
		if err := bus.Subscribe(topic, handler); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *NotificationService) onJobModerated(e events.JobModerated) {

	kind := entities.NotificationGeneric
	message := fmt.Sprintf("Your job \"%s\" is now %s.", e.Job.Title, e.Status)

	switch e.Status {
	case entities.JobApproved:
		kind = entities.NotificationJobApproved
	case entities.JobRejected, entities.JobSuspended:
		kind = entities.NotificationJobRejected
		if e.Reason != nil {
			message += " Reason: " + *e.Reason
		}
	}

	link := "/jobs/" + e.Job.ID
	s.notifyCompanyAdmins(e.Job.CompanyID, kind, message, &link)
}

func (s *NotificationService) onCompanyModerated(e events.CompanyModerated) {

	kind := entities.NotificationGeneric
	message := fmt.Sprintf("Your company \"%s\" is now %s.", e.Company.Name, e.Status)

	switch e.Status {
	case entities.CompanyApproved:
		kind = entities.NotificationCompanyApproved
	case entities.CompanyRejected, entities.CompanySuspended, entities.CompanyDeleted:
		kind = entities.NotificationCompanyRejected
		if e.Reason != nil {
			message += " Reason: " + *e.Reason
		}
	}

	for _, uid := range e.Company.AdminUidsAsArray() {
		s.add(uid, kind, message, nil)
	}
}

func (s *NotificationService) onUserModerated(e events.UserModerated) {
	message := fmt.Sprintf("Your account status changed to %s.", e.Status)
	s.add(e.UserID, entities.NotificationAccountStatus, message, nil)
}

func (s *NotificationService) onApplicationSubmitted(e events.ApplicationSubmitted) {
	message := fmt.Sprintf("New applicant for \"%s\".", e.Job.Title)
	link := "/jobs/" + e.Job.ID + "/applications"
	s.notifyCompanyAdmins(e.Job.CompanyID, entities.NotificationNewApplicant, message, &link)
}

func (s *NotificationService) onApplicationUpdated(e events.ApplicationUpdated) {
	message := fmt.Sprintf("Your application status changed to %s.", e.Application.Status)
	link := "/my-applications"
	s.add(e.Application.ApplicantID, entities.NotificationApplicationUpdate, message, &link)
}

func (s *NotificationService) notifyCompanyAdmins(companyID string, kind entities.NotificationType,
	message string, link *string) {

	company, err := s.companies.GetByID(context.Background(), companyID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load company %v for notification: %v", companyID, err)
		return
	}
	if company == nil {
		return
	}

	for _, uid := range company.AdminUidsAsArray() {
		s.add(uid, kind, message, link)
	}
}

func (s *NotificationService) add(userID string, kind entities.NotificationType, message string, link *string) {
	notification := entities.NewNotification(uuid.NewString(), userID, kind, message, link)
	if err := s.notifications.Add(context.Background(), notification); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to create notification for user %v: %v", userID, err)
	}
}
