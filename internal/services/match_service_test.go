package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func Test_MatchJobsForSeeker_PreservesModelIDOrder(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"relevantJobIDs": ["j3", "j1", "j2"], "reasoning": "skills overlap"}`, nil).Once()

	service := NewMatchService(ai)
	result, err := service.MatchJobsForSeeker(context.Background(), JobMatchInput{
		JobSeekerProfile: "profile text",
		JobPostings:      "postings text",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"j3", "j1", "j2"}, result.RelevantJobIDs)
	assert.Equal(t, "skills overlap", result.Reasoning)
	ai.AssertExpectations(t)
}

func Test_MatchJobsForSeeker_WhenInputInvalid_ShouldNotCallModel(t *testing.T) {

	ai := &mockAiClient{}
	service := NewMatchService(ai)

	_, err := service.MatchJobsForSeeker(context.Background(), JobMatchInput{
		JobSeekerProfile: "profile text",
		JobPostings:      "",
	})

	assert.Error(t, err)
	ai.AssertNotCalled(t, "GenerateResponse", mock.Anything, mock.Anything)
}

func Test_MatchJobsForSeeker_StripsCodeFences(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("```json\n{\"relevantJobIDs\": [\"j1\"], \"reasoning\": \"ok\"}\n```", nil).Once()

	service := NewMatchService(ai)
	result, err := service.MatchJobsForSeeker(context.Background(), JobMatchInput{
		JobSeekerProfile: "profile text",
		JobPostings:      "postings text",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"j1"}, result.RelevantJobIDs)
}

func Test_MatchJobsForSeeker_WhenResponseNotJSON_ShouldReturnBadAIResponse(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("here are some great jobs for you!", nil).Once()

	service := NewMatchService(ai)
	_, err := service.MatchJobsForSeeker(context.Background(), JobMatchInput{
		JobSeekerProfile: "profile text",
		JobPostings:      "postings text",
	})

	assert.True(t, errors.Is(err, ErrBadAIResponse))
}

func Test_MatchJobsForSeeker_WhenIDsFieldMissing_ShouldReturnBadAIResponse(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"reasoning": "no field with IDs"}`, nil).Once()

	service := NewMatchService(ai)
	_, err := service.MatchJobsForSeeker(context.Background(), JobMatchInput{
		JobSeekerProfile: "profile text",
		JobPostings:      "postings text",
	})

	assert.True(t, errors.Is(err, ErrBadAIResponse))
}

func Test_MatchJobsForSeeker_WhenEmptyRanking_ShouldSucceed(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"relevantJobIDs": [], "reasoning": "nothing fits"}`, nil).Once()

	service := NewMatchService(ai)
	result, err := service.MatchJobsForSeeker(context.Background(), JobMatchInput{
		JobSeekerProfile: "profile text",
		JobPostings:      "postings text",
	})

	assert.NoError(t, err)
	assert.Empty(t, result.RelevantJobIDs)
}

func Test_MatchCandidatesForJob_PreservesModelIDOrder(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"relevantCandidateIDs": ["u2", "u1"], "reasoning": "both qualify"}`, nil).Once()

	service := NewMatchService(ai)
	result, err := service.MatchCandidatesForJob(context.Background(), CandidateMatchInput{
		JobDescription:    "job text",
		CandidateProfiles: "candidates text",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"u2", "u1"}, result.RelevantCandidateIDs)
	ai.AssertExpectations(t)
}
