package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/events"
	"github.com/jobboardly/backend/internal/metrics"
	"github.com/jobboardly/backend/internal/moderation"
)

type jobModerationRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus, reason *string) error
}

type companyModerationRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Company, error)
	UpdateStatus(ctx context.Context, id string, status entities.CompanyStatus, reason *string) error
}

type userModerationRepository interface {
	GetByID(ctx context.Context, id string) (*entities.UserProfile, error)
	UpdateStatus(ctx context.Context, id string, status entities.UserStatus) error
}

// ModerationService applies admin status decisions: it runs the pure decision
// functions, persists the result and publishes the outcome for notification
// fan-out. Storage errors propagate to the caller untouched.
type ModerationService struct {
	bus       EventBus.Bus
	jobs      jobModerationRepository
	companies companyModerationRepository
	users     userModerationRepository
}

func NewModerationService(bus EventBus.Bus, jobs jobModerationRepository,
	companies companyModerationRepository, users userModerationRepository) *ModerationService {

	return &ModerationService{bus: bus, jobs: jobs, companies: companies, users: users}
}

// ModerateJob persists the decided status and returns the stored moderation
// reason (nil when the decision cleared it).
func (s *ModerationService) ModerateJob(ctx context.Context, jobID string,
	target entities.JobStatus, reason string) (*string, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}

	decision := moderation.DecideJobStatus(target, reason)
	if err := s.jobs.UpdateStatus(ctx, jobID, decision.Status, decision.Reason); err != nil {
		return nil, err
	}

	metrics.ModerationActionsCounter.WithLabelValues("job", string(decision.Status)).Inc()
	s.bus.Publish(events.JobModeratedTopic, events.JobModerated{
		Job:    *job,
		Status: decision.Status,
		Reason: decision.Reason,
	})

	return decision.Reason, nil
}

// ModerateCompany returns the final persisted status (the "active" intent comes
// back as "approved") together with the stored moderation reason.
func (s *ModerationService) ModerateCompany(ctx context.Context, companyID string,
	intended entities.CompanyStatus, reason string) (entities.CompanyStatus, *string, error) {

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return "", nil, err
	}
	if company == nil {
		return "", nil, ErrNotFound
	}

	decision := moderation.DecideCompanyStatus(intended, reason)
	if err := s.companies.UpdateStatus(ctx, companyID, decision.Status, decision.Reason); err != nil {
		return "", nil, err
	}

	metrics.ModerationActionsCounter.WithLabelValues("company", string(decision.Status)).Inc()
	s.bus.Publish(events.CompanyModeratedTopic, events.CompanyModerated{
		Company: *company,
		Status:  decision.Status,
		Reason:  decision.Reason,
	})

	return decision.Status, decision.Reason, nil
}

func (s *ModerationService) SetUserStatus(ctx context.Context, userID string, status entities.UserStatus) error {

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	decision := moderation.DecideUserStatus(status)
	if err := s.users.UpdateStatus(ctx, userID, decision.Status); err != nil {
		return err
	}

	metrics.ModerationActionsCounter.WithLabelValues("user", string(decision.Status)).Inc()
	s.bus.Publish(events.UserModeratedTopic, events.UserModerated{
		UserID: userID,
		Status: decision.Status,
	})

	return nil
}
