package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jobboardly/backend/internal/entities"
	"gorm.io/gorm"
)

type Companies struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

func (repo *Companies) Add(ctx context.Context, company *entities.Company) error {
	return repo.db.WithContext(ctx).Create(company).Error
}

func (repo *Companies) GetByID(ctx context.Context, id string) (*entities.Company, error) {

	var company entities.Company
	if err := repo.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (repo *Companies) Get(ctx context.Context, limit int, offset int) ([]entities.Company, error) {

	var companies []entities.Company
	if err := repo.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (repo *Companies) UpdateStatus(ctx context.Context, id string, status entities.CompanyStatus, reason *string) error {
	return repo.db.WithContext(ctx).Model(&entities.Company{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":            status,
			"moderation_reason": reason,
			"updated_at":        time.Now(),
		}).Error
}
