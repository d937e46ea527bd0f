package progress

import (
	"context"
	"time"

	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/question"
)

type Service interface {
	ToggleBookmark(ctx context.Context, userID, questionID string) (bool, error)
	ListBookmarkedQuestions(ctx context.Context, userID string) ([]question.Question, error)
	GetProgress(ctx context.Context, userID, questionID string) (*ProgressRecord, error)
	RecordAttempt(ctx context.Context, userID, questionID string, score *float64, at time.Time) error
}

type service struct {
	repo      Repository
	questions question.Repository
}

func NewService(repo Repository, questions question.Repository) Service {
	return &service{repo: repo, questions: questions}
}

func (s *service) ToggleBookmark(ctx context.Context, userID, questionID string) (bool, error) {
	bookmarked, err := s.repo.ToggleBookmark(userID, questionID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to toggle bookmark")
		return false, err
	}
	return bookmarked, nil
}

func (s *service) ListBookmarkedQuestions(ctx context.Context, userID string) ([]question.Question, error) {
	ids, err := s.repo.ListBookmarkedQuestionIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.questions.GetByIDs(ids)
}

// GetProgress returns a zero-value record when the user never interacted
// with the question, so clients need no null handling.
func (s *service) GetProgress(ctx context.Context, userID, questionID string) (*ProgressRecord, error) {
	rec, err := s.repo.FindByUserAndQuestion(userID, questionID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &ProgressRecord{UserID: userID, QuestionID: questionID}, nil
	}
	return rec, nil
}

func (s *service) RecordAttempt(ctx context.Context, userID, questionID string, score *float64, at time.Time) error {
	return s.repo.RecordAttempt(userID, questionID, score, at)
}
