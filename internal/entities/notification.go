package entities

import "time"

type NotificationType string

const (
	NotificationJobApproved       NotificationType = "jobApproved"
	NotificationJobRejected       NotificationType = "jobRejected"
	NotificationCompanyApproved   NotificationType = "companyApproved"
	NotificationCompanyRejected   NotificationType = "companyRejected"
	NotificationNewApplicant      NotificationType = "newApplicant"
	NotificationApplicationUpdate NotificationType = "applicationUpdate"
	NotificationAccountStatus     NotificationType = "accountStatus"
	NotificationGeneric           NotificationType = "generic"
)

type Notification struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Type      NotificationType
	Message   string
	Link      *string
	IsRead    bool `gorm:"default:false"`
	CreatedAt time.Time
}

func NewNotification(id, userID string, kind NotificationType, message string, link *string) *Notification {
	return &Notification{
		ID:      id,
		UserID:  userID,
		Type:    kind,
		Message: message,
		Link:    link,
	}
}
