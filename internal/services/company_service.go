package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/events"
)

type companyRepository interface {
	Add(ctx context.Context, company *entities.Company) error
	GetByID(ctx context.Context, id string) (*entities.Company, error)
	Get(ctx context.Context, limit int, offset int) ([]entities.Company, error)
}

type CompanyService struct {
	bus       EventBus.Bus
	companies companyRepository
}

func NewCompanyService(bus EventBus.Bus, companies companyRepository) *CompanyService {
	return &CompanyService{bus: bus, companies: companies}
}

// Register creates a company in the pending status with the registering user
// as its first admin.
func (s *CompanyService) Register(ctx context.Context, name, description, adminUID string) (*entities.Company, error) {

	company := entities.NewCompany(uuid.NewString(), name, description, []string{adminUID})
	if err := s.companies.Add(ctx, company); err != nil {
		return nil, err
	}

	s.bus.Publish(events.CompanySubmittedTopic, events.CompanySubmitted{Company: *company})
	return company, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*entities.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}
	return company, nil
}

func (s *CompanyService) List(ctx context.Context, limit, offset int) ([]entities.Company, error) {
	return s.companies.Get(ctx, limit, offset)
}
