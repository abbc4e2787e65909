package repositories

import (
	"context"
	"time"

	"github.com/jobboardly/backend/internal/entities"
	"gorm.io/gorm"
)

type Notifications struct {
	db *gorm.DB
}

func NewNotificationsRepository(db *gorm.DB) *Notifications {
	return &Notifications{db: db}
}

func (repo *Notifications) Add(ctx context.Context, notification *entities.Notification) error {
	return repo.db.WithContext(ctx).Create(notification).Error
}

func (repo *Notifications) GetByUser(ctx context.Context, userID string) ([]entities.Notification, error) {

	var notifications []entities.Notification
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&notifications, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *Notifications) MarkRead(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Model(&entities.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}

func (repo *Notifications) RemoveReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.Notification{}, "is_read = ? AND created_at < ?", true, cutoff)
	return res.RowsAffected, res.Error
}
