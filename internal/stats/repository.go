package stats

import (
	"gorm.io/gorm"

	"github.com/examtrack/examtrack-api/internal/scenario"
	"github.com/examtrack/examtrack-api/internal/user"
)

// ScoreAggregate is one user's rollup over graded responses. Ungraded
// (NULL) rows never enter these aggregates.
type ScoreAggregate struct {
	UserID        string
	AvgScore      float64
	BestScore     float64
	TotalAttempts int64
}

type Repository interface {
	UserAverageGrade(userID string) (*float64, int64, error)
	ScoreAggregates() ([]ScoreAggregate, error)
	OverallAverageGrade() (*float64, error)
	CountResponses() (int64, error)
	CountRegisteredUsers() (int64, error)
	FindUsersByIDs(ids []string) (map[string]user.User, error)
	RecentResponses(limit int) ([]scenario.ScenarioResponse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UserAverageGrade(userID string) (*float64, int64, error) {
	var row struct {
		Avg   *float64
		Total int64
	}
	err := r.db.Model(&scenario.ScenarioResponse{}).
		Select("AVG(ai_grade) AS avg, COUNT(*) AS total").
		Where("user_id = ? AND ai_grade IS NOT NULL", userID).
		Scan(&row).Error
	if err != nil {
		return nil, 0, err
	}
	return row.Avg, row.Total, nil
}

// ScoreAggregates groups graded responses per user, sorted by average
// descending. Ties keep whatever stable order the database produces; no
// further tie-break is applied.
func (r *repository) ScoreAggregates() ([]ScoreAggregate, error) {
	var rows []ScoreAggregate
	err := r.db.Model(&scenario.ScenarioResponse{}).
		Select("user_id, AVG(ai_grade) AS avg_score, MAX(ai_grade) AS best_score, COUNT(*) AS total_attempts").
		Where("ai_grade IS NOT NULL").
		Group("user_id").
		Order("avg_score DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) OverallAverageGrade() (*float64, error) {
	var row struct{ Avg *float64 }
	err := r.db.Model(&scenario.ScenarioResponse{}).
		Select("AVG(ai_grade) AS avg").
		Where("ai_grade IS NOT NULL").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return row.Avg, nil
}

func (r *repository) CountResponses() (int64, error) {
	var count int64
	err := r.db.Model(&scenario.ScenarioResponse{}).Count(&count).Error
	return count, err
}

func (r *repository) CountRegisteredUsers() (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).
		Where("role <> ?", "guest").
		Count(&count).Error
	return count, err
}

func (r *repository) FindUsersByIDs(ids []string) (map[string]user.User, error) {
	if len(ids) == 0 {
		return map[string]user.User{}, nil
	}
	var users []user.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func (r *repository) RecentResponses(limit int) ([]scenario.ScenarioResponse, error) {
	var responses []scenario.ScenarioResponse
	err := r.db.Order("submitted_at DESC").Limit(limit).Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
