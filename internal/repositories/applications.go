package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jobboardly/backend/internal/entities"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *entities.Application) error {
	return repo.db.WithContext(ctx).Create(application).Error
}

func (repo *Applications) GetByID(ctx context.Context, id string) (*entities.Application, error) {

	var application entities.Application
	err := repo.db.WithContext(ctx).Preload("Answers").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entities.Application, error) {

	var application entities.Application
	err := repo.db.WithContext(ctx).Preload("Answers").
		First(&application, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetByJob(ctx context.Context, jobID string) ([]entities.Application, error) {

	var applications []entities.Application
	err := repo.db.WithContext(ctx).Preload("Answers").
		Order("applied_at DESC").
		Find(&applications, "job_id = ?", jobID).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error) {

	var applications []entities.Application
	err := repo.db.WithContext(ctx).Preload("Answers").
		Order("applied_at DESC").
		Find(&applications, "applicant_id = ?", applicantID).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus, notes *string) error {
	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}
	if notes != nil {
		updates["employer_notes"] = notes
	}
	return repo.db.WithContext(ctx).Model(&entities.Application{}).Where("id = ?", id).
		Updates(updates).Error
}
