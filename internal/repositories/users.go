package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jobboardly/backend/internal/entities"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, profile *entities.UserProfile) error {
	return repo.db.WithContext(ctx).Create(profile).Error
}

func (repo *Users) GetByID(ctx context.Context, id string) (*entities.UserProfile, error) {

	var profile entities.UserProfile
	err := repo.db.WithContext(ctx).
		Preload("Experiences", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Educations", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Languages", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (repo *Users) GetSeekers(ctx context.Context, limit int, offset int) ([]entities.UserProfile, error) {

	var profiles []entities.UserProfile
	err := repo.db.WithContext(ctx).
		Preload("Experiences", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Educations", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Languages", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Limit(limit).
		Offset(offset).
		Find(&profiles, "role = ? AND status = ?", entities.RoleJobSeeker, entities.UserActive).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *Users) UpdateStatus(ctx context.Context, id string, status entities.UserStatus) error {
	return repo.db.WithContext(ctx).Model(&entities.UserProfile{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (repo *Users) UpdateJobSets(ctx context.Context, profile *entities.UserProfile) error {
	return repo.db.WithContext(ctx).Model(&entities.UserProfile{}).Where("id = ?", profile.ID).
		Updates(map[string]any{
			"applied_job_ids": profile.AppliedJobIDs,
			"saved_job_ids":   profile.SavedJobIDs,
			"updated_at":      time.Now(),
		}).Error
}
