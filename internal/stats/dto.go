package stats

import "time"

type UserStats struct {
	TotalFlashcards     int64    `json:"total_flashcards"`
	TotalScenarios      int64    `json:"total_scenarios"`
	TotalMCQs           int64    `json:"total_mcqs"`
	AttemptedFlashcards int64    `json:"attempted_flashcards"`
	AttemptedScenarios  int64    `json:"attempted_scenarios"`
	Bookmarks           int64    `json:"bookmarks"`
	AverageScore        *float64 `json:"average_score"`
	TotalResponses      int64    `json:"total_responses"`
}

type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	AvgScore      float64 `json:"avg_score"`
	BestScore     float64 `json:"best_score"`
	TotalAttempts int64   `json:"total_attempts"`
	IsCurrentUser bool    `json:"is_current_user"`
}

type Leaderboard struct {
	Entries           []LeaderboardEntry `json:"leaderboard"`
	UserRank          *int               `json:"user_rank"`
	UserStats         *LeaderboardEntry  `json:"user_stats"`
	TotalParticipants int                `json:"total_participants"`
	Message           string             `json:"message,omitempty"`
}

type ResetResult struct {
	Message          string `json:"message"`
	ResponsesDeleted int64  `json:"responses_deleted"`
	ProgressReset    int64  `json:"progress_reset"`
}

type RecentActivity struct {
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	QuestionID  string    `json:"question_id"`
	Grade       *float64  `json:"ai_grade"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AdminAnalytics struct {
	TotalRegisteredUsers int64            `json:"total_registered_users"`
	TotalFlashcards      int64            `json:"total_flashcards"`
	TotalScenarios       int64            `json:"total_scenarios"`
	TotalMCQs            int64            `json:"total_mcqs"`
	TotalQuestions       int64            `json:"total_questions"`
	TotalResponses       int64            `json:"total_scenario_responses"`
	TotalQuizAttempts    int64            `json:"total_quiz_attempts"`
	AverageScenarioScore *float64         `json:"average_scenario_score"`
	RecentActivity       []RecentActivity `json:"recent_activity"`
}
