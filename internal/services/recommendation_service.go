package services

import (
	"context"

	"github.com/jobboardly/backend/internal/entities"
	"github.com/jobboardly/backend/internal/format"
)

type jobMatcher interface {
	MatchJobsForSeeker(ctx context.Context, input JobMatchInput) (*JobMatchResult, error)
	MatchCandidatesForJob(ctx context.Context, input CandidateMatchInput) (*CandidateMatchResult, error)
}

type seekerReader interface {
	GetByID(ctx context.Context, id string) (*entities.UserProfile, error)
	GetSeekers(ctx context.Context, limit int, offset int) ([]entities.UserProfile, error)
}

type openJobsReader interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	GetApproved(ctx context.Context, limit int, offset int) ([]entities.Job, error)
}

// RecommendationService wires the matching request builder to the AI flow:
// load entities, render them to text, run the single-shot match call.
type RecommendationService struct {
	matcher  jobMatcher
	users    seekerReader
	jobs     openJobsReader
	pageSize int
}

func NewRecommendationService(matcher jobMatcher, users seekerReader, jobs openJobsReader) *RecommendationService {
	return &RecommendationService{matcher: matcher, users: users, jobs: jobs, pageSize: 50}
}

// RecommendJobs ranks the currently approved jobs for one seeker. The ID order
// in the result is the model's ranking.
func (s *RecommendationService) RecommendJobs(ctx context.Context, userID string) (*JobMatchResult, error) {

	profile, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	jobs, err := s.jobs.GetApproved(ctx, s.pageSize, 0)
	if err != nil {
		return nil, err
	}

	return s.matcher.MatchJobsForSeeker(ctx, JobMatchInput{
		JobSeekerProfile: format.SeekerProfile(profile),
		JobPostings:      format.JobPostings(jobs),
	})
}

// RecommendCandidates ranks active job seekers for one job posting.
func (s *RecommendationService) RecommendCandidates(ctx context.Context, jobID string) (*CandidateMatchResult, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}

	seekers, err := s.users.GetSeekers(ctx, s.pageSize, 0)
	if err != nil {
		return nil, err
	}

	return s.matcher.MatchCandidatesForJob(ctx, CandidateMatchInput{
		JobDescription:    format.JobPostings([]entities.Job{*job}),
		CandidateProfiles: format.CandidateProfiles(seekers),
	})
}
