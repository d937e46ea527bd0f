package stats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/examtrack/examtrack-api/internal/apperror"
	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
	"github.com/examtrack/examtrack-api/internal/scenario"
	"github.com/examtrack/examtrack-api/internal/user"
	util "github.com/examtrack/examtrack-api/internal/utils"
)

type statsFixture struct {
	db        *gorm.DB
	service   Service
	progress  progress.Repository
	responses scenario.Repository
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&question.Question{},
		&progress.ProgressRecord{},
		&scenario.ScenarioResponse{},
	))

	questionRepo := question.NewRepository(db)
	progressRepo := progress.NewRepository(db)
	responseRepo := scenario.NewRepository(db)

	return &statsFixture{
		db:        db,
		service:   NewService(NewRepository(db), questionRepo, progressRepo, responseRepo),
		progress:  progressRepo,
		responses: responseRepo,
	}
}

func (fx *statsFixture) addUser(t *testing.T, name, role string) string {
	t.Helper()
	u := &user.User{
		ID:    util.NewID("user"),
		Email: name + "@example.com",
		Name:  name,
		Role:  role,
	}
	require.NoError(t, fx.db.Create(u).Error)
	return u.ID
}

func (fx *statsFixture) addResponse(t *testing.T, userID string, grade *float64, at time.Time) {
	t.Helper()
	require.NoError(t, fx.responses.Create(&scenario.ScenarioResponse{
		ID:           util.NewID("resp"),
		UserID:       userID,
		QuestionID:   "q_1",
		UserResponse: "answer",
		Grade:        grade,
		SubmittedAt:  at,
	}))
}

func ptr(v float64) *float64 { return &v }

func TestService_GetUserStats(t *testing.T) {
	fx := newStatsFixture(t)
	ctx := context.Background()
	userID := fx.addUser(t, "jordan", auth.RoleUser)
	now := time.Now().UTC()

	for _, qType := range []question.Type{question.TypeFlashcard, question.TypeFlashcard, question.TypeScenario} {
		require.NoError(t, fx.db.Create(&question.Question{
			ID:         util.NewID("q"),
			Type:       qType,
			CategoryID: "cat_test",
		}).Error)
	}

	fx.addResponse(t, userID, ptr(80), now)
	fx.addResponse(t, userID, ptr(90), now)
	fx.addResponse(t, userID, nil, now)
	require.NoError(t, fx.progress.RecordAttempt(userID, "q_1", ptr(90), now))
	_, err := fx.progress.ToggleBookmark(userID, "q_2")
	require.NoError(t, err)

	stats, err := fx.service.GetUserStats(ctx, userID)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalFlashcards)
	assert.EqualValues(t, 1, stats.TotalScenarios)
	assert.EqualValues(t, 1, stats.Bookmarks)
	require.NotNil(t, stats.AverageScore)
	assert.Equal(t, 85.0, *stats.AverageScore, "ungraded responses do not drag the average down")
	assert.EqualValues(t, 2, stats.TotalResponses, "only graded responses are counted")
}

func TestService_GetLeaderboard(t *testing.T) {
	fx := newStatsFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	topID := fx.addUser(t, "top", auth.RoleUser)
	midID := fx.addUser(t, "mid", auth.RoleUser)
	adminID := fx.addUser(t, "boss", auth.RoleAdmin)
	guestID := user.GuestUserID
	require.NoError(t, fx.db.Create(&user.User{
		ID: guestID, Email: user.GuestEmail, Name: user.GuestName, Role: auth.RoleGuest,
	}).Error)

	fx.addResponse(t, topID, ptr(95), now)
	fx.addResponse(t, midID, ptr(60), now)
	fx.addResponse(t, midID, ptr(70), now)
	fx.addResponse(t, adminID, ptr(100), now)
	fx.addResponse(t, guestID, ptr(100), now)

	board, err := fx.service.GetLeaderboard(ctx, &auth.Actor{ID: midID, Role: auth.RoleUser})
	require.NoError(t, err)

	require.Len(t, board.Entries, 2, "guests and admins never appear on the board")
	assert.Equal(t, "top", board.Entries[0].Name)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, "mid", board.Entries[1].Name)
	assert.Equal(t, 2, board.Entries[1].Rank)
	assert.Equal(t, 65.0, board.Entries[1].AvgScore)
	assert.True(t, board.Entries[1].IsCurrentUser)

	require.NotNil(t, board.UserRank)
	assert.Equal(t, 2, *board.UserRank)
	require.NotNil(t, board.UserStats)
	assert.EqualValues(t, 2, board.UserStats.TotalAttempts)
	assert.Equal(t, 2, board.TotalParticipants)
}

func TestService_GetLeaderboard_GuestDenied(t *testing.T) {
	fx := newStatsFixture(t)

	board, err := fx.service.GetLeaderboard(context.Background(), &auth.Actor{
		ID:   user.GuestUserID,
		Role: auth.RoleGuest,
	})
	require.NoError(t, err)

	assert.Empty(t, board.Entries)
	assert.Nil(t, board.UserRank)
	assert.NotEmpty(t, board.Message)
}

func TestService_GetLeaderboard_TopTwenty(t *testing.T) {
	fx := newStatsFixture(t)
	now := time.Now().UTC()

	var currentID string
	for i := 0; i < 25; i++ {
		id := fx.addUser(t, fmt.Sprintf("user%02d", i), auth.RoleUser)
		// Scores descend with i, so user24 ranks last.
		fx.addResponse(t, id, ptr(float64(100-i)), now)
		if i == 24 {
			currentID = id
		}
	}

	board, err := fx.service.GetLeaderboard(context.Background(), &auth.Actor{ID: currentID, Role: auth.RoleUser})
	require.NoError(t, err)

	assert.Len(t, board.Entries, 20, "the board is capped")
	assert.Equal(t, 25, board.TotalParticipants)
	require.NotNil(t, board.UserRank, "the caller's rank is reported even when off the board")
	assert.Equal(t, 25, *board.UserRank)
}

func TestService_ResetScores(t *testing.T) {
	fx := newStatsFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()
	userID := fx.addUser(t, "jordan", auth.RoleUser)
	otherID := fx.addUser(t, "other", auth.RoleUser)

	fx.addResponse(t, userID, ptr(80), now)
	fx.addResponse(t, userID, ptr(90), now)
	fx.addResponse(t, otherID, ptr(70), now)
	require.NoError(t, fx.progress.RecordAttempt(userID, "q_1", ptr(90), now))
	_, err := fx.progress.ToggleBookmark(userID, "q_2")
	require.NoError(t, err)

	result, err := fx.service.ResetScores(ctx, &auth.Actor{ID: userID, Role: auth.RoleUser})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.ResponsesDeleted)
	assert.EqualValues(t, 2, result.ProgressReset)

	rec, err := fx.progress.FindByUserAndQuestion(userID, "q_1")
	require.NoError(t, err)
	assert.Zero(t, rec.Attempts)
	assert.Nil(t, rec.LastScore)

	bookmarks, err := fx.progress.CountBookmarks(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, bookmarks, "reset keeps bookmarks")

	// The other user's history survives.
	others, err := fx.responses.ListByUser(otherID)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestService_ResetScores_GuestForbidden(t *testing.T) {
	fx := newStatsFixture(t)

	_, err := fx.service.ResetScores(context.Background(), &auth.Actor{
		ID:   user.GuestUserID,
		Role: auth.RoleGuest,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestService_AdminAnalytics(t *testing.T) {
	fx := newStatsFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	userID := fx.addUser(t, "jordan", auth.RoleUser)
	require.NoError(t, fx.db.Create(&user.User{
		ID: user.GuestUserID, Email: user.GuestEmail, Name: user.GuestName, Role: auth.RoleGuest,
	}).Error)

	require.NoError(t, fx.db.Create(&question.Question{
		ID: util.NewID("q"), Type: question.TypeScenario, CategoryID: "cat_test",
	}).Error)

	fx.addResponse(t, userID, ptr(80), now)
	fx.addResponse(t, userID, nil, now.Add(time.Minute))
	require.NoError(t, fx.progress.RecordAttempt(userID, "q_1", ptr(80), now))

	analytics, err := fx.service.AdminAnalytics(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, analytics.TotalRegisteredUsers, "the guest identity is not a registered user")
	assert.EqualValues(t, 1, analytics.TotalScenarios)
	assert.EqualValues(t, 1, analytics.TotalQuestions)
	assert.EqualValues(t, 2, analytics.TotalResponses)
	assert.EqualValues(t, 1, analytics.TotalQuizAttempts)
	require.NotNil(t, analytics.AverageScenarioScore)
	assert.Equal(t, 80.0, *analytics.AverageScenarioScore)

	require.Len(t, analytics.RecentActivity, 2)
	assert.Equal(t, "jordan", analytics.RecentActivity[0].UserName)
	assert.Nil(t, analytics.RecentActivity[0].Grade, "most recent first")
}
