package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jobboardly/backend/internal/entities"
)

type userRepository interface {
	Add(ctx context.Context, profile *entities.UserProfile) error
	GetByID(ctx context.Context, id string) (*entities.UserProfile, error)
	UpdateJobSets(ctx context.Context, profile *entities.UserProfile) error
}

type UserService struct {
	users userRepository
}

func NewUserService(users userRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, name, email string, role entities.UserRole) (*entities.UserProfile, error) {

	profile := entities.NewUserProfile(uuid.NewString(), name, email, role)
	if err := s.users.Add(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entities.UserProfile, error) {
	profile, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *UserService) SaveJob(ctx context.Context, userID, jobID string) error {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	profile.AddSavedJob(jobID)
	return s.users.UpdateJobSets(ctx, profile)
}

func (s *UserService) UnsaveJob(ctx context.Context, userID, jobID string) error {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	profile.RemoveSavedJob(jobID)
	return s.users.UpdateJobSets(ctx, profile)
}
