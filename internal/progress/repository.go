package progress

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	util "github.com/examtrack/examtrack-api/internal/utils"
)

var conflictColumns = []clause.Column{{Name: "user_id"}, {Name: "question_id"}}

type Repository interface {
	FindByUserAndQuestion(userID, questionID string) (*ProgressRecord, error)
	ToggleBookmark(userID, questionID string) (bool, error)
	ListBookmarkedQuestionIDs(userID string) ([]string, error)
	RecordAttempt(userID, questionID string, score *float64, at time.Time) error
	CountBookmarks(userID string) (int64, error)
	CountAttempted(userID string) (int64, error)
	CountScored(userID string) (int64, error)
	CountAttemptedAll() (int64, error)
	ResetScores(userID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserAndQuestion(userID, questionID string) (*ProgressRecord, error) {
	var rec ProgressRecord
	err := r.db.First(&rec, "user_id = ? AND question_id = ?", userID, questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// ToggleBookmark flips the flag in a single upsert: first toggle creates the
// record bookmarked, later toggles invert in place without touching attempts.
func (r *repository) ToggleBookmark(userID, questionID string) (bool, error) {
	rec := &ProgressRecord{
		ID:         util.NewID("prog"),
		UserID:     userID,
		QuestionID: questionID,
		Bookmarked: true,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   conflictColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{"bookmarked": gorm.Expr("NOT bookmarked")}),
	}).Create(rec).Error
	if err != nil {
		return false, err
	}

	current, err := r.FindByUserAndQuestion(userID, questionID)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, errors.New("progress record missing after bookmark toggle")
	}
	return current.Bookmarked, nil
}

func (r *repository) ListBookmarkedQuestionIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&ProgressRecord{}).
		Where("user_id = ? AND bookmarked = ?", userID, true).
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// RecordAttempt is the one write that sees real contention. The increment is
// evaluated by the storage engine, never computed from a prior read, and the
// score/timestamp are last-writer-wins.
func (r *repository) RecordAttempt(userID, questionID string, score *float64, at time.Time) error {
	rec := &ProgressRecord{
		ID:            util.NewID("prog"),
		UserID:        userID,
		QuestionID:    questionID,
		Bookmarked:    false,
		Attempts:      1,
		LastScore:     score,
		LastAttempted: &at,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: conflictColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"attempts":       gorm.Expr("attempts + 1"),
			"last_score":     score,
			"last_attempted": at,
		}),
	}).Create(rec).Error
}

func (r *repository) CountBookmarks(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&ProgressRecord{}).
		Where("user_id = ? AND bookmarked = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *repository) CountAttempted(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&ProgressRecord{}).
		Where("user_id = ? AND attempts > 0", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountScored(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&ProgressRecord{}).
		Where("user_id = ? AND last_score IS NOT NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountAttemptedAll() (int64, error) {
	var count int64
	err := r.db.Model(&ProgressRecord{}).
		Where("attempts > 0").
		Count(&count).Error
	return count, err
}

// ResetScores zeroes the numeric fields but leaves bookmarks alone.
func (r *repository) ResetScores(userID string) (int64, error) {
	res := r.db.Model(&ProgressRecord{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"attempts":       0,
			"last_score":     nil,
			"last_attempted": nil,
		})
	return res.RowsAffected, res.Error
}
