package question

import (
	"time"

	"gorm.io/datatypes"
)

// Question is the content unit. The payload varies by type: prompt+answer
// for flashcards, prompt+model-answer+time-limit for scenarios, and
// prompt+options+correct-answer-set for MCQs. The core treats questions as
// read-only during play.
type Question struct {
	ID             string         `gorm:"type:varchar(64);primaryKey" json:"question_id"`
	Type           Type           `gorm:"type:varchar(32);not null;index" json:"type"`
	CategoryID     string         `gorm:"type:varchar(64);not null;index" json:"category_id"`
	CategoryName   string         `gorm:"type:varchar(255)" json:"category_name"`
	Title          *string        `gorm:"type:text" json:"title,omitempty"`
	Content        *string        `gorm:"type:text" json:"content,omitempty"`
	Description    *string        `gorm:"type:text" json:"description,omitempty"`
	Question       *string        `gorm:"type:text" json:"question,omitempty"`
	Options        datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty"`
	CorrectAnswers datatypes.JSON `gorm:"type:jsonb" json:"correct_answers,omitempty"`
	Answer         *string        `gorm:"type:text" json:"answer,omitempty"`
	ModelAnswer    *string        `gorm:"type:text" json:"model_answer,omitempty"`
	Explanation    *string        `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty     Difficulty     `gorm:"type:varchar(16);not null;default:medium" json:"difficulty"`
	Reference      *string        `gorm:"type:text" json:"reference,omitempty"`
	TimeLimit      *int           `json:"time_limit,omitempty"`
	IsComplex      bool           `gorm:"not null;default:false" json:"is_complex"`
	Parts          int            `gorm:"not null;default:1" json:"parts"`
	StudyTip       *string        `gorm:"type:text" json:"study_tip,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
