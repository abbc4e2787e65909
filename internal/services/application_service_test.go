package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/jobboardly/backend/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockApplicationsRepo struct {
	mock.Mock
}

func (m *mockApplicationsRepo) Add(ctx context.Context, application *entities.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *mockApplicationsRepo) GetByID(ctx context.Context, id string) (*entities.Application, error) {
	args := m.Called(ctx, id)
	application, _ := args.Get(0).(*entities.Application)
	return application, args.Error(1)
}

func (m *mockApplicationsRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entities.Application, error) {
	args := m.Called(ctx, jobID, applicantID)
	application, _ := args.Get(0).(*entities.Application)
	return application, args.Error(1)
}

func (m *mockApplicationsRepo) GetByJob(ctx context.Context, jobID string) ([]entities.Application, error) {
	args := m.Called(ctx, jobID)
	applications, _ := args.Get(0).([]entities.Application)
	return applications, args.Error(1)
}

func (m *mockApplicationsRepo) GetByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error) {
	args := m.Called(ctx, applicantID)
	applications, _ := args.Get(0).([]entities.Application)
	return applications, args.Error(1)
}

func (m *mockApplicationsRepo) UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus, notes *string) error {
	return m.Called(ctx, id, status, notes).Error(0)
}

type mockApplicantRepo struct {
	mock.Mock
}

func (m *mockApplicantRepo) GetByID(ctx context.Context, id string) (*entities.UserProfile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*entities.UserProfile)
	return profile, args.Error(1)
}

func (m *mockApplicantRepo) UpdateJobSets(ctx context.Context, profile *entities.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type mockJobReader struct {
	mock.Mock
}

func (m *mockJobReader) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

func approvedJob(id string) *entities.Job {
	return &entities.Job{ID: id, Status: entities.JobApproved, Title: "Backend Engineer"}
}

func Test_Submit_CreatesApplicationAndUpdatesAppliedSet(t *testing.T) {

	jobs := &mockJobReader{}
	jobs.On("GetByID", mock.Anything, "j1").Return(approvedJob("j1"), nil)

	applications := &mockApplicationsRepo{}
	applications.On("GetByJobAndApplicant", mock.Anything, "j1", "u1").Return(nil, nil)
	applications.On("Add", mock.Anything, mock.Anything).Return(nil)

	profile := entities.NewUserProfile("u1", "Priya", "priya@example.com", entities.RoleJobSeeker)
	users := &mockApplicantRepo{}
	users.On("GetByID", mock.Anything, "u1").Return(profile, nil)
	users.On("UpdateJobSets", mock.Anything, mock.Anything).Return(nil)

	service := NewApplicationService(EventBus.New(), applications, users, jobs)
	application, err := service.Submit(context.Background(), "j1", "u1", nil)

	assert.NoError(t, err)
	assert.Equal(t, "j1", application.JobID)
	assert.Equal(t, entities.ApplicationApplied, application.Status)
	assert.True(t, profile.HasApplied("j1"))
	applications.AssertExpectations(t)
	users.AssertExpectations(t)
}

func Test_Submit_WhenAppliedSetUpdateFails_StillSucceeds(t *testing.T) {

	jobs := &mockJobReader{}
	jobs.On("GetByID", mock.Anything, "j1").Return(approvedJob("j1"), nil)

	applications := &mockApplicationsRepo{}
	applications.On("GetByJobAndApplicant", mock.Anything, "j1", "u1").Return(nil, nil)
	applications.On("Add", mock.Anything, mock.Anything).Return(nil)

	profile := entities.NewUserProfile("u1", "Priya", "priya@example.com", entities.RoleJobSeeker)
	users := &mockApplicantRepo{}
	users.On("GetByID", mock.Anything, "u1").Return(profile, nil)
	users.On("UpdateJobSets", mock.Anything, mock.Anything).Return(errors.New("store unavailable"))

	service := NewApplicationService(EventBus.New(), applications, users, jobs)
	application, err := service.Submit(context.Background(), "j1", "u1", nil)

	assert.NoError(t, err)
	assert.NotNil(t, application)
	applications.AssertExpectations(t)
}

func Test_Submit_WhenProfileLoadFails_StillSucceeds(t *testing.T) {

	jobs := &mockJobReader{}
	jobs.On("GetByID", mock.Anything, "j1").Return(approvedJob("j1"), nil)

	applications := &mockApplicationsRepo{}
	applications.On("GetByJobAndApplicant", mock.Anything, "j1", "u1").Return(nil, nil)
	applications.On("Add", mock.Anything, mock.Anything).Return(nil)

	users := &mockApplicantRepo{}
	users.On("GetByID", mock.Anything, "u1").Return(nil, errors.New("store unavailable"))

	service := NewApplicationService(EventBus.New(), applications, users, jobs)
	application, err := service.Submit(context.Background(), "j1", "u1", nil)

	assert.NoError(t, err)
	assert.NotNil(t, application)
	users.AssertNotCalled(t, "UpdateJobSets", mock.Anything, mock.Anything)
}

func Test_Submit_WhenJobNotApproved_ShouldReturnJobNotOpen(t *testing.T) {

	jobs := &mockJobReader{}
	jobs.On("GetByID", mock.Anything, "j1").Return(&entities.Job{ID: "j1", Status: entities.JobPending}, nil)

	applications := &mockApplicationsRepo{}

	service := NewApplicationService(EventBus.New(), applications, &mockApplicantRepo{}, jobs)
	_, err := service.Submit(context.Background(), "j1", "u1", nil)

	assert.True(t, errors.Is(err, ErrJobNotOpen))
	applications.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func Test_Submit_WhenAlreadyApplied_ShouldReturnConflict(t *testing.T) {

	jobs := &mockJobReader{}
	jobs.On("GetByID", mock.Anything, "j1").Return(approvedJob("j1"), nil)

	applications := &mockApplicationsRepo{}
	applications.On("GetByJobAndApplicant", mock.Anything, "j1", "u1").
		Return(&entities.Application{ID: "a1", JobID: "j1", ApplicantID: "u1"}, nil)

	service := NewApplicationService(EventBus.New(), applications, &mockApplicantRepo{}, jobs)
	_, err := service.Submit(context.Background(), "j1", "u1", nil)

	assert.True(t, errors.Is(err, ErrAlreadyApplied))
	applications.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func Test_Submit_WhenJobMissing_ShouldReturnNotFound(t *testing.T) {

	jobs := &mockJobReader{}
	jobs.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	service := NewApplicationService(EventBus.New(), &mockApplicationsRepo{}, &mockApplicantRepo{}, jobs)
	_, err := service.Submit(context.Background(), "nope", "u1", nil)

	assert.True(t, errors.Is(err, ErrNotFound))
}

func Test_UserApplications_KeyedByJobID(t *testing.T) {

	applications := &mockApplicationsRepo{}
	applications.On("GetByApplicant", mock.Anything, "u1").Return([]entities.Application{
		{ID: "a1", JobID: "j1", ApplicantID: "u1"},
		{ID: "a2", JobID: "j2", ApplicantID: "u1"},
	}, nil)

	service := NewApplicationService(EventBus.New(), applications, &mockApplicantRepo{}, &mockJobReader{})
	byJob, err := service.UserApplications(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Len(t, byJob, 2)
	assert.Equal(t, "a1", byJob["j1"].ID)
	assert.Equal(t, "a2", byJob["j2"].ID)
}

func Test_UpdateStatus_WhenApplicationMissing_ShouldReturnNotFound(t *testing.T) {

	applications := &mockApplicationsRepo{}
	applications.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	service := NewApplicationService(EventBus.New(), applications, &mockApplicantRepo{}, &mockJobReader{})
	err := service.UpdateStatus(context.Background(), "nope", entities.ApplicationReviewed, nil)

	assert.True(t, errors.Is(err, ErrNotFound))
}
