package scenario

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/examtrack/examtrack-api/internal/apperror"
	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
	util "github.com/examtrack/examtrack-api/internal/utils"
)

type fakeGrader struct {
	results []*GradingResult
	err     error
	calls   int
}

func (f *fakeGrader) Grade(ctx context.Context, input GradingInput) (*GradingResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return result, nil
}

type submitFixture struct {
	db       *gorm.DB
	service  Service
	grader   *fakeGrader
	progress progress.Repository
	question *question.Question
}

func newSubmitFixture(t *testing.T, grader *fakeGrader) *submitFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&question.Question{}, &progress.ProgressRecord{}, &ScenarioResponse{}))

	questionRepo := question.NewRepository(db)
	progressRepo := progress.NewRepository(db)
	progressService := progress.NewService(progressRepo, questionRepo)

	content := "You respond to a domestic disturbance call."
	model := "Assess scene safety, separate the parties, interview individually."
	q := &question.Question{
		ID:          util.NewID("q"),
		Type:        question.TypeScenario,
		CategoryID:  "cat_test",
		Content:     &content,
		ModelAnswer: &model,
	}
	require.NoError(t, questionRepo.Create(q))

	return &submitFixture{
		db:       db,
		service:  NewService(NewRepository(db), questionRepo, progressService, grader),
		grader:   grader,
		progress: progressRepo,
		question: q,
	}
}

func TestService_Submit_Graded(t *testing.T) {
	fx := newSubmitFixture(t, &fakeGrader{
		results: []*GradingResult{{Score: 85, Feedback: "Good coverage of the key steps."}},
	})

	resp, err := fx.service.Submit(context.Background(), "user_abc", SubmitDTO{
		QuestionID:   fx.question.ID,
		UserResponse: "I would first assess scene safety.",
		TimeTaken:    120,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Grade)
	assert.Equal(t, 85.0, *resp.Grade)
	assert.Equal(t, "Good coverage of the key steps.", resp.Feedback)
	assert.NotEmpty(t, resp.ResponseID)

	var stored ScenarioResponse
	require.NoError(t, fx.db.First(&stored, "id = ?", resp.ResponseID).Error)
	require.NotNil(t, stored.Grade)
	assert.Equal(t, 85.0, *stored.Grade)
	assert.Equal(t, "I would first assess scene safety.", stored.UserResponse)
	assert.Equal(t, 120, stored.TimeTaken)

	rec, err := fx.progress.FindByUserAndQuestion("user_abc", fx.question.ID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Attempts)
	require.NotNil(t, rec.LastScore)
	assert.Equal(t, 85.0, *rec.LastScore)
}

func TestService_Submit_GradingDegraded(t *testing.T) {
	fx := newSubmitFixture(t, &fakeGrader{err: errors.New("oracle unreachable")})

	resp, err := fx.service.Submit(context.Background(), "user_abc", SubmitDTO{
		QuestionID:   fx.question.ID,
		UserResponse: "I would first assess scene safety.",
	})
	require.NoError(t, err, "a grading failure must not fail the submission")

	assert.Nil(t, resp.Grade)
	assert.Equal(t, FallbackFeedback, resp.Feedback)

	// The attempt still lands in both stores.
	var stored ScenarioResponse
	require.NoError(t, fx.db.First(&stored, "id = ?", resp.ResponseID).Error)
	assert.Nil(t, stored.Grade)
	require.NotNil(t, stored.Feedback)
	assert.Equal(t, FallbackFeedback, *stored.Feedback)

	rec, err := fx.progress.FindByUserAndQuestion("user_abc", fx.question.ID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Attempts)
	assert.Nil(t, rec.LastScore)
}

func TestService_Submit_LatestScoreWins(t *testing.T) {
	fx := newSubmitFixture(t, &fakeGrader{
		results: []*GradingResult{
			{Score: 40, Feedback: "Weak first attempt."},
			{Score: 90, Feedback: "Much better."},
		},
	})
	ctx := context.Background()

	_, err := fx.service.Submit(ctx, "user_abc", SubmitDTO{
		QuestionID:   fx.question.ID,
		UserResponse: "first try",
	})
	require.NoError(t, err)

	_, err = fx.service.Submit(ctx, "user_abc", SubmitDTO{
		QuestionID:   fx.question.ID,
		UserResponse: "second try",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, fx.db.Model(&ScenarioResponse{}).Where("user_id = ?", "user_abc").Count(&count).Error)
	assert.EqualValues(t, 2, count, "every submission is its own record")

	rec, err := fx.progress.FindByUserAndQuestion("user_abc", fx.question.ID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 2, rec.Attempts)
	require.NotNil(t, rec.LastScore)
	assert.Equal(t, 90.0, *rec.LastScore)
}

func TestService_Submit_UnknownQuestion(t *testing.T) {
	fx := newSubmitFixture(t, &fakeGrader{})

	_, err := fx.service.Submit(context.Background(), "user_abc", SubmitDTO{
		QuestionID:   "q_missing",
		UserResponse: "anything",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Zero(t, fx.grader.calls, "missing questions are rejected before grading")
}

func TestService_Submit_EmptyResponse(t *testing.T) {
	fx := newSubmitFixture(t, &fakeGrader{})

	_, err := fx.service.Submit(context.Background(), "user_abc", SubmitDTO{
		QuestionID: fx.question.ID,
	})
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, fx.grader.calls)
}

func TestService_History(t *testing.T) {
	fx := newSubmitFixture(t, &fakeGrader{
		results: []*GradingResult{{Score: 70, Feedback: "ok"}},
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := fx.service.Submit(ctx, "user_abc", SubmitDTO{
			QuestionID:   fx.question.ID,
			UserResponse: fmt.Sprintf("attempt %d", i),
		})
		require.NoError(t, err)
	}
	_, err := fx.service.Submit(ctx, "user_other", SubmitDTO{
		QuestionID:   fx.question.ID,
		UserResponse: "someone else",
	})
	require.NoError(t, err)

	history, err := fx.service.History(ctx, "user_abc")
	require.NoError(t, err)
	assert.Len(t, history, 3)
	for _, item := range history {
		assert.Equal(t, "user_abc", item.UserID)
	}
}
