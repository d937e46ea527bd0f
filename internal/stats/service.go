package stats

import (
	"context"
	"math"

	"github.com/examtrack/examtrack-api/internal/apperror"
	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
	"github.com/examtrack/examtrack-api/internal/scenario"
)

const leaderboardSize = 20

type Service interface {
	GetUserStats(ctx context.Context, userID string) (*UserStats, error)
	GetLeaderboard(ctx context.Context, actor *auth.Actor) (*Leaderboard, error)
	ResetScores(ctx context.Context, actor *auth.Actor) (*ResetResult, error)
	AdminAnalytics(ctx context.Context) (*AdminAnalytics, error)
}

type service struct {
	repo      Repository
	questions question.Repository
	progress  progress.Repository
	responses scenario.Repository
}

func NewService(repo Repository, questions question.Repository, prog progress.Repository, responses scenario.Repository) Service {
	return &service{
		repo:      repo,
		questions: questions,
		progress:  prog,
		responses: responses,
	}
}

func (s *service) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	stats := &UserStats{}
	var err error

	if stats.TotalFlashcards, err = s.questions.CountByType(question.TypeFlashcard); err != nil {
		return nil, err
	}
	if stats.TotalScenarios, err = s.questions.CountByType(question.TypeScenario); err != nil {
		return nil, err
	}
	if stats.TotalMCQs, err = s.questions.CountByType(question.TypeMultipleChoice); err != nil {
		return nil, err
	}
	if stats.AttemptedFlashcards, err = s.progress.CountAttempted(userID); err != nil {
		return nil, err
	}
	if stats.AttemptedScenarios, err = s.progress.CountScored(userID); err != nil {
		return nil, err
	}
	if stats.Bookmarks, err = s.progress.CountBookmarks(userID); err != nil {
		return nil, err
	}

	// Average only over graded attempts. Degraded (NULL) scores are
	// excluded, not treated as zero.
	avg, total, err := s.repo.UserAverageGrade(userID)
	if err != nil {
		return nil, err
	}
	stats.AverageScore = avg
	stats.TotalResponses = total

	return stats, nil
}

// GetLeaderboard ranks all registered users by average graded score. Guests
// are denied participation: the shared guest identity would corrupt
// per-user ranking. Admin accounts are excluded from the entries.
func (s *service) GetLeaderboard(ctx context.Context, actor *auth.Actor) (*Leaderboard, error) {
	if actor.IsGuest() {
		return &Leaderboard{
			Entries: []LeaderboardEntry{},
			Message: "Register to see your ranking compared to other users!",
		}, nil
	}

	aggregates, err := s.repo.ScoreAggregates()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(aggregates))
	for _, agg := range aggregates {
		ids = append(ids, agg.UserID)
	}
	users, err := s.repo.FindUsersByIDs(ids)
	if err != nil {
		return nil, err
	}

	board := &Leaderboard{Entries: []LeaderboardEntry{}}
	for _, agg := range aggregates {
		u, ok := users[agg.UserID]
		if !ok || u.Role == auth.RoleGuest || u.Role == auth.RoleAdmin {
			continue
		}

		entry := LeaderboardEntry{
			Rank:          len(board.Entries) + 1,
			Name:          u.Name,
			AvgScore:      round1(agg.AvgScore),
			BestScore:     round1(agg.BestScore),
			TotalAttempts: agg.TotalAttempts,
			IsCurrentUser: agg.UserID == actor.ID,
		}
		board.Entries = append(board.Entries, entry)

		if entry.IsCurrentUser {
			rank := entry.Rank
			stats := entry
			board.UserRank = &rank
			board.UserStats = &stats
		}
	}

	board.TotalParticipants = len(board.Entries)
	if len(board.Entries) > leaderboardSize {
		board.Entries = board.Entries[:leaderboardSize]
	}
	return board, nil
}

// ResetScores wipes the user's attempt history but keeps bookmarks. Guests
// share one identity, so a guest "reset" would destroy other visitors'
// shared history and is refused outright.
func (s *service) ResetScores(ctx context.Context, actor *auth.Actor) (*ResetResult, error) {
	log := config.WithContext(ctx)

	if actor.IsGuest() {
		return nil, apperror.ErrForbidden
	}

	deleted, err := s.responses.DeleteByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	reset, err := s.progress.ResetScores(actor.ID)
	if err != nil {
		return nil, err
	}

	log.Infof("Reset scores for user %s: %d responses deleted, %d progress records reset", actor.ID, deleted, reset)
	return &ResetResult{
		Message:          "Your scores have been reset successfully!",
		ResponsesDeleted: deleted,
		ProgressReset:    reset,
	}, nil
}

func (s *service) AdminAnalytics(ctx context.Context) (*AdminAnalytics, error) {
	analytics := &AdminAnalytics{}
	var err error

	if analytics.TotalRegisteredUsers, err = s.repo.CountRegisteredUsers(); err != nil {
		return nil, err
	}
	if analytics.TotalFlashcards, err = s.questions.CountByType(question.TypeFlashcard); err != nil {
		return nil, err
	}
	if analytics.TotalScenarios, err = s.questions.CountByType(question.TypeScenario); err != nil {
		return nil, err
	}
	if analytics.TotalMCQs, err = s.questions.CountByType(question.TypeMultipleChoice); err != nil {
		return nil, err
	}
	analytics.TotalQuestions = analytics.TotalFlashcards + analytics.TotalScenarios + analytics.TotalMCQs

	if analytics.TotalResponses, err = s.repo.CountResponses(); err != nil {
		return nil, err
	}
	if analytics.TotalQuizAttempts, err = s.progress.CountAttemptedAll(); err != nil {
		return nil, err
	}

	avg, err := s.repo.OverallAverageGrade()
	if err != nil {
		return nil, err
	}
	if avg != nil {
		rounded := round1(*avg)
		analytics.AverageScenarioScore = &rounded
	}

	recent, err := s.repo.RecentResponses(10)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(recent))
	for _, resp := range recent {
		ids = append(ids, resp.UserID)
	}
	users, err := s.repo.FindUsersByIDs(ids)
	if err != nil {
		return nil, err
	}

	analytics.RecentActivity = make([]RecentActivity, 0, len(recent))
	for _, resp := range recent {
		name := "Guest"
		if u, ok := users[resp.UserID]; ok {
			name = u.Name
		}
		analytics.RecentActivity = append(analytics.RecentActivity, RecentActivity{
			UserID:      resp.UserID,
			UserName:    name,
			QuestionID:  resp.QuestionID,
			Grade:       resp.Grade,
			SubmittedAt: resp.SubmittedAt,
		})
	}

	return analytics, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
