package progress

import "time"

// ProgressRecord is the per-(user, question) rollup. At most one row per
// pair, enforced by the composite unique index; all mutations are atomic
// upserts so concurrent submissions cannot lose attempt counts.
type ProgressRecord struct {
	ID            string     `gorm:"type:varchar(64);primaryKey" json:"progress_id"`
	UserID        string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_progress_user_question" json:"user_id"`
	QuestionID    string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_progress_user_question" json:"question_id"`
	Bookmarked    bool       `gorm:"not null;default:false" json:"bookmarked"`
	Attempts      int        `gorm:"not null;default:0" json:"attempts"`
	LastScore     *float64   `json:"last_score"`
	LastAttempted *time.Time `json:"last_attempted"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
