package scenario

import "time"

// ScenarioResponse is one graded attempt. Rows are append-only: every
// submission is a new record, and nothing mutates them afterwards except the
// user-initiated bulk reset. A nil Grade means grading was degraded, not
// that the user scored zero.
type ScenarioResponse struct {
	ID           string    `gorm:"type:varchar(64);primaryKey" json:"response_id"`
	UserID       string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	QuestionID   string    `gorm:"type:varchar(64);not null;index" json:"question_id"`
	UserResponse string    `gorm:"type:text;not null" json:"user_response"`
	Grade        *float64  `gorm:"column:ai_grade" json:"ai_grade"`
	Feedback     *string   `gorm:"column:ai_feedback;type:text" json:"ai_feedback"`
	TimeTaken    int       `gorm:"not null;default:0" json:"time_taken"`
	SubmittedAt  time.Time `gorm:"not null;index" json:"submitted_at"`
}
