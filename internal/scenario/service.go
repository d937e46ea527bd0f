package scenario

import (
	"context"
	"time"

	"github.com/examtrack/examtrack-api/internal/apperror"
	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
	util "github.com/examtrack/examtrack-api/internal/utils"
)

// FallbackFeedback is returned whenever the grading oracle fails. The
// submission itself is never lost over a flaky third-party dependency.
const FallbackFeedback = "Automatic grading was unavailable for this submission. " +
	"Your response has been saved; please review the model answer and self-assess."

type Service interface {
	Submit(ctx context.Context, userID string, dto SubmitDTO) (*SubmitResponse, error)
	History(ctx context.Context, userID string) ([]ScenarioResponse, error)
}

type service struct {
	repo          Repository
	questions     question.Repository
	progress      progress.Service
	grader        Grader
	graderTimeout time.Duration
	now           func() time.Time
}

func NewService(repo Repository, questions question.Repository, prog progress.Service, grader Grader) Service {
	return &service{
		repo:          repo,
		questions:     questions,
		progress:      prog,
		grader:        grader,
		graderTimeout: config.GraderTimeout(),
		now:           time.Now,
	}
}

// Submit runs the full grading pipeline: fetch question, grade best-effort,
// persist the attempt, then roll it up into the progress record. Grading
// failures degrade to a nil score with fixed feedback; only a missing
// question or a storage failure surfaces as an error.
func (s *service) Submit(ctx context.Context, userID string, dto SubmitDTO) (*SubmitResponse, error) {
	log := config.WithContext(ctx)

	if dto.UserResponse == "" {
		return nil, apperror.Validation("user_response is required")
	}

	q, err := s.questions.GetByID(dto.QuestionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.ErrNotFound
	}

	var grade *float64
	feedback := FallbackFeedback

	graded, err := s.gradeWithTimeout(ctx, q, dto.UserResponse)
	if err != nil {
		log.WithError(err).Warnf("Grading degraded for question %s", q.ID)
	} else {
		grade = &graded.Score
		feedback = graded.Feedback
	}

	submittedAt := s.now().UTC()
	resp := &ScenarioResponse{
		ID:           util.NewID("resp"),
		UserID:       userID,
		QuestionID:   q.ID,
		UserResponse: dto.UserResponse,
		Grade:        grade,
		Feedback:     &feedback,
		TimeTaken:    dto.TimeTaken,
		SubmittedAt:  submittedAt,
	}
	if err := s.repo.Create(resp); err != nil {
		log.WithError(err).Error("Failed to persist scenario response")
		return nil, err
	}

	// Most recent attempt always wins on score/timestamp, even when nil.
	if err := s.progress.RecordAttempt(ctx, userID, q.ID, grade, submittedAt); err != nil {
		log.WithError(err).Error("Failed to update progress after submission")
		return nil, err
	}

	return &SubmitResponse{
		ResponseID: resp.ID,
		Grade:      grade,
		Feedback:   feedback,
	}, nil
}

func (s *service) gradeWithTimeout(ctx context.Context, q *question.Question, submission string) (*GradingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.graderTimeout)
	defer cancel()

	return s.grader.Grade(ctx, GradingInput{
		Prompt:          scenarioPrompt(q),
		ReferenceAnswer: referenceAnswer(q),
		Submission:      submission,
	})
}

func scenarioPrompt(q *question.Question) string {
	if q.Content != nil && *q.Content != "" {
		return *q.Content
	}
	if q.Question != nil && *q.Question != "" {
		return *q.Question
	}
	if q.Title != nil {
		return *q.Title
	}
	return ""
}

func referenceAnswer(q *question.Question) string {
	if q.ModelAnswer != nil && *q.ModelAnswer != "" {
		return *q.ModelAnswer
	}
	if q.Answer != nil {
		return *q.Answer
	}
	return ""
}

func (s *service) History(ctx context.Context, userID string) ([]ScenarioResponse, error) {
	return s.repo.ListByUser(userID)
}
