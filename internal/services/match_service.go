package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jobboardly/backend/internal/logger"
	"github.com/jobboardly/backend/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

// JobMatchInput carries the pre-rendered text blocks for ranking jobs against
// one seeker. Both fields come from the format package and must be non-empty.
type JobMatchInput struct {
	JobSeekerProfile string `validate:"required"`
	JobPostings      string `validate:"required"`
}

// JobMatchResult is the model's ranking. RelevantJobIDs keeps the model's
// relevance order and is never re-sorted.
type JobMatchResult struct {
	RelevantJobIDs []string `json:"relevantJobIDs"`
	Reasoning      string   `json:"reasoning"`
}

// CandidateMatchInput is the reverse direction: rank candidates for one job.
type CandidateMatchInput struct {
	JobDescription    string `validate:"required"`
	CandidateProfiles string `validate:"required"`
}

type CandidateMatchResult struct {
	RelevantCandidateIDs []string `json:"relevantCandidateIDs"`
	Reasoning            string   `json:"reasoning"`
}

type MatchService struct {
	ai       aiClient
	validate *validator.Validate
}

func NewMatchService(ai aiClient) *MatchService {
	return &MatchService{ai: ai, validate: validator.New()}
}

// MatchJobsForSeeker validates the input, issues a single prompt call and
// returns the parsed ranking. Input validation failures never reach the model;
// model and network failures propagate verbatim with no retry here.
func (s *MatchService) MatchJobsForSeeker(ctx context.Context, input JobMatchInput) (*JobMatchResult, error) {

	if err := s.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "invalid job match input")
	}

	raw, err := s.generate(ctx, "jobs", jobMatchRequest(input))
	if err != nil {
		return nil, err
	}

	var result JobMatchResult
	if err := unmarshalResult(raw, &result); err != nil {
		metrics.MatchRequestsCounter.WithLabelValues("jobs", "bad_response").Inc()
		return nil, err
	}
	if result.RelevantJobIDs == nil {
		metrics.MatchRequestsCounter.WithLabelValues("jobs", "bad_response").Inc()
		return nil, errors.Wrap(ErrBadAIResponse, "missing relevantJobIDs field")
	}

	metrics.MatchRequestsCounter.WithLabelValues("jobs", "ok").Inc()
	return &result, nil
}

// MatchCandidatesForJob is symmetric to MatchJobsForSeeker.
func (s *MatchService) MatchCandidatesForJob(ctx context.Context, input CandidateMatchInput) (*CandidateMatchResult, error) {

	if err := s.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "invalid candidate match input")
	}

	raw, err := s.generate(ctx, "candidates", candidateMatchRequest(input))
	if err != nil {
		return nil, err
	}

	var result CandidateMatchResult
	if err := unmarshalResult(raw, &result); err != nil {
		metrics.MatchRequestsCounter.WithLabelValues("candidates", "bad_response").Inc()
		return nil, err
	}
	if result.RelevantCandidateIDs == nil {
		metrics.MatchRequestsCounter.WithLabelValues("candidates", "bad_response").Inc()
		return nil, errors.Wrap(ErrBadAIResponse, "missing relevantCandidateIDs field")
	}

	metrics.MatchRequestsCounter.WithLabelValues("candidates", "ok").Inc()
	return &result, nil
}

func (s *MatchService) generate(ctx context.Context, kind, request string) (string, error) {
	start := time.Now()
	raw, err := s.ai.GenerateResponse(ctx, request)
	metrics.MatchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.MatchRequestsCounter.WithLabelValues(kind, "error").Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("match request failed: %v", err)
		return "", err
	}
	return raw, nil
}

func jobMatchRequest(input JobMatchInput) (request string) {

	request = "You rank job postings against a candidate profile for a job board.\n\n"
	request += "Candidate profile:\n" + input.JobSeekerProfile + "\n\n"
	request += "Job postings:\n" + input.JobPostings + "\n\n"
	request += "Pick the postings that fit the candidate and order them from most to least relevant. " +
		"Use only IDs that appear in the postings. " +
		"Respond with a single JSON object of the shape " +
		`{"relevantJobIDs": ["id", ...], "reasoning": "short explanation"}` +
		" and nothing else."
	return request
}

func candidateMatchRequest(input CandidateMatchInput) (request string) {

	request = "You rank candidates against a job description for a job board.\n\n"
	request += "Job description:\n" + input.JobDescription + "\n\n"
	request += "Candidate profiles:\n" + input.CandidateProfiles + "\n\n"
	request += "Pick the candidates that fit the job and order them from most to least relevant. " +
		"Use only IDs that appear in the profiles. " +
		"Respond with a single JSON object of the shape " +
		`{"relevantCandidateIDs": ["id", ...], "reasoning": "short explanation"}` +
		" and nothing else."
	return request
}

func unmarshalResult(raw string, v any) error {
	if err := json.Unmarshal([]byte(extractJSON(raw)), v); err != nil {
		return errors.Wrapf(ErrBadAIResponse, "parse response: %v", err)
	}
	return nil
}

// extractJSON strips the markdown code fences some models wrap JSON in.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
