package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/events"
)

type jobRepository interface {
	Add(ctx context.Context, job *entities.Job) error
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	GetByCompany(ctx context.Context, companyID string) ([]entities.Job, error)
	GetApproved(ctx context.Context, limit int, offset int) ([]entities.Job, error)
}

type companyReader interface {
	GetByID(ctx context.Context, id string) (*entities.Company, error)
}

type JobService struct {
	bus       EventBus.Bus
	jobs      jobRepository
	companies companyReader
}

func NewJobService(bus EventBus.Bus, jobs jobRepository, companies companyReader) *JobService {
	return &JobService{bus: bus, jobs: jobs, companies: companies}
}

type PostJobRequest struct {
	CompanyID   string
	Title       string
	Description string
	Location    string
	Skills      []string
	SalaryMin   *float64
	SalaryMax   *float64
}

// Post creates a job in the pending status; it becomes visible to seekers only
// after an admin approves it. The owning company must exist and be approved.
func (s *JobService) Post(ctx context.Context, req PostJobRequest) (*entities.Job, error) {

	company, err := s.companies.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}
	if company.Status != entities.CompanyApproved {
		return nil, ErrCompanyNotApproved
	}

	job := entities.NewJob(uuid.NewString(), req.CompanyID, req.Title, req.Description, req.Location, req.Skills)
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax

	if err := s.jobs.Add(ctx, job); err != nil {
		return nil, err
	}

	s.bus.Publish(events.JobSubmittedTopic, events.JobSubmitted{Job: *job})
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *JobService) ListOpen(ctx context.Context, limit, offset int) ([]entities.Job, error) {
	return s.jobs.GetApproved(ctx, limit, offset)
}

func (s *JobService) ListByCompany(ctx context.Context, companyID string) ([]entities.Job, error) {
	return s.jobs.GetByCompany(ctx, companyID)
}
