package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/events"
	"github.com/jobboardly/backend/internal/logger"
	"github.com/jobboardly/backend/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type applicationRepository interface {
	Add(ctx context.Context, application *entities.Application) error
	GetByID(ctx context.Context, id string) (*entities.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entities.Application, error)
	GetByJob(ctx context.Context, jobID string) ([]entities.Application, error)
	GetByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error)
	UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus, notes *string) error
}

type applicantRepository interface {
	GetByID(ctx context.Context, id string) (*entities.UserProfile, error)
	UpdateJobSets(ctx context.Context, profile *entities.UserProfile) error
}

type jobReader interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
}

type ApplicationService struct {
	bus          EventBus.Bus
	applications applicationRepository
	users        applicantRepository
	jobs         jobReader
}

func NewApplicationService(bus EventBus.Bus, applications applicationRepository,
	users applicantRepository, jobs jobReader) *ApplicationService {

	return &ApplicationService{bus: bus, applications: applications, users: users, jobs: jobs}
}

// Submit creates the one application a seeker may have per job. Only approved
// jobs accept applications; a second submit for the same pair fails with
// ErrAlreadyApplied.
func (s *ApplicationService) Submit(ctx context.Context, jobID, applicantID string,
	answers []entities.ApplicationAnswer) (*entities.Application, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	if job.Status != entities.JobApproved {
		return nil, ErrJobNotOpen
	}

	existing, err := s.applications.GetByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	application := entities.NewApplication(uuid.NewString(), jobID, applicantID, answers)
	if err := s.applications.Add(ctx, application); err != nil {
		return nil, err
	}

	// the applied set on the profile is a denormalized convenience; the
	// application row is the source of truth, so failures here only log
	profile, err := s.users.GetByID(ctx, applicantID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Warnf("failed to load profile %v to record applied job: %v", applicantID, err)
	} else if profile != nil {
		profile.AddAppliedJob(jobID)
		if err := s.users.UpdateJobSets(ctx, profile); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Warnf("failed to record applied job for user %v: %v", applicantID, err)
		}
	}

	metrics.ApplicationsCounter.Inc()
	s.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		Application: *application,
		Job:         *job,
	})

	return application, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id string,
	status entities.ApplicationStatus, employerNotes *string) error {

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if application == nil {
		return ErrNotFound
	}

	if err := s.applications.UpdateStatus(ctx, id, status, employerNotes); err != nil {
		return err
	}

	application.Status = status
	s.bus.Publish(events.ApplicationUpdatedTopic, events.ApplicationUpdated{Application: *application})
	return nil
}

func (s *ApplicationService) ApplicationsForJob(ctx context.Context, jobID string) ([]entities.Application, error) {
	return s.applications.GetByJob(ctx, jobID)
}

// UserApplications returns the seeker's applications keyed by job ID, which is
// also what guards the one-application-per-job rule on the read side.
func (s *ApplicationService) UserApplications(ctx context.Context, applicantID string) (map[string]entities.Application, error) {

	applications, err := s.applications.GetByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	byJob := make(map[string]entities.Application, len(applications))
	for _, application := range applications {
		byJob[application.JobID] = application
	}
	return byJob, nil
}
