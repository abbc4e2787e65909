package services

import (
	"context"
	"sync"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectingNotificationsRepo struct {
	mu    sync.Mutex
	added []entities.Notification
}

func (r *collectingNotificationsRepo) Add(ctx context.Context, notification *entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, *notification)
	return nil
}

type stubCompanyReader struct {
	company *entities.Company
}

func (s stubCompanyReader) GetByID(ctx context.Context, id string) (*entities.Company, error) {
	return s.company, nil
}

func Test_NotificationService_JobRejected_NotifiesAllCompanyAdmins(t *testing.T) {

	bus := EventBus.New()
	repo := &collectingNotificationsRepo{}
	company := entities.NewCompany("c1", "Acme", "", []string{"u1", "u2"})

	_, err := NewNotificationService(bus, repo, stubCompanyReader{company: company})
	require.NoError(t, err)

	reason := "Rejected by admin"
	bus.Publish(events.JobModeratedTopic, events.JobModerated{
		Job:    entities.Job{ID: "j1", CompanyID: "c1", Title: "Backend Engineer"},
		Status: entities.JobRejected,
		Reason: &reason,
	})
	bus.WaitAsync()

	require.Len(t, repo.added, 2)
	assert.ElementsMatch(t, []string{"u1", "u2"},
		[]string{repo.added[0].UserID, repo.added[1].UserID})
	assert.Equal(t, entities.NotificationJobRejected, repo.added[0].Type)
	assert.Contains(t, repo.added[0].Message, "Reason: Rejected by admin")
}

func Test_NotificationService_ApplicationUpdated_NotifiesApplicant(t *testing.T) {

	bus := EventBus.New()
	repo := &collectingNotificationsRepo{}

	_, err := NewNotificationService(bus, repo, stubCompanyReader{})
	require.NoError(t, err)

	bus.Publish(events.ApplicationUpdatedTopic, events.ApplicationUpdated{
		Application: entities.Application{ID: "a1", JobID: "j1", ApplicantID: "u1", Status: entities.ApplicationReviewed},
	})
	bus.WaitAsync()

	require.Len(t, repo.added, 1)
	assert.Equal(t, "u1", repo.added[0].UserID)
	assert.Equal(t, entities.NotificationApplicationUpdate, repo.added[0].Type)
	assert.Contains(t, repo.added[0].Message, "reviewed")
}

func Test_NotificationService_UserModerated_NotifiesUser(t *testing.T) {

	bus := EventBus.New()
	repo := &collectingNotificationsRepo{}

	_, err := NewNotificationService(bus, repo, stubCompanyReader{})
	require.NoError(t, err)

	bus.Publish(events.UserModeratedTopic, events.UserModerated{UserID: "u1", Status: entities.UserSuspended})
	bus.WaitAsync()

	require.Len(t, repo.added, 1)
	assert.Equal(t, entities.NotificationAccountStatus, repo.added[0].Type)
	assert.Contains(t, repo.added[0].Message, "suspended")
}

func Test_NotificationService_WhenCompanyMissing_AddsNothing(t *testing.T) {

	bus := EventBus.New()
	repo := &collectingNotificationsRepo{}

	_, err := NewNotificationService(bus, repo, stubCompanyReader{})
	require.NoError(t, err)

	bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		Application: entities.Application{ID: "a1", JobID: "j1", ApplicantID: "u1"},
		Job:         entities.Job{ID: "j1", CompanyID: "gone", Title: "Backend Engineer"},
	})
	bus.WaitAsync()

	assert.Empty(t, repo.added)
}
