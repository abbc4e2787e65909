package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jobboardly/backend/internal/entities"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id string) (*entities.Job, error) {

	var job entities.Job
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) GetByCompany(ctx context.Context, companyID string) ([]entities.Job, error) {

	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).Find(&jobs, "company_id = ?", companyID).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetApproved(ctx context.Context, limit int, offset int) ([]entities.Job, error) {

	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Find(&jobs, "status = ?", entities.JobApproved).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) UpdateStatus(ctx context.Context, id string, status entities.JobStatus, reason *string) error {
	return repo.db.WithContext(ctx).Model(&entities.Job{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":            status,
			"moderation_reason": reason,
			"updated_at":        time.Now(),
		}).Error
}
