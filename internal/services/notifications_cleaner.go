package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type notificationCleanupRepository interface {
	RemoveReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationsCleaner prunes read notifications past their retention window
// once a day.
type NotificationsCleaner struct {
	notifications   notificationCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewNotificationsCleaner(notifications notificationCleanupRepository, retentionInDays int) (*NotificationsCleaner, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	nc := &NotificationsCleaner{
		notifications:   notifications,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := nc.cron.AddFunc("0 3 * * *", nc.cleanOldNotifications)
	if err != nil {
		return nil, err
	}

	nc.cron.Start()
	log.Infof("notifications cleaner started, retention in days: %d", nc.retentionInDays)
	return nc, nil
}

func (nc *NotificationsCleaner) Stop() {
	nc.cron.Stop()
}

func (nc *NotificationsCleaner) cleanOldNotifications() {
	cutoff := time.Now().Add(-time.Duration(nc.retentionInDays) * 24 * time.Hour)
	rowsAffected, err := nc.notifications.RemoveReadBefore(context.Background(), cutoff)
	if err != nil {
		log.Errorf("Failed to clean old notifications: %v", err)
	} else {
		log.Infof("Old notifications cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
