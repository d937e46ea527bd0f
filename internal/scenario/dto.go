package scenario

type SubmitDTO struct {
	QuestionID   string `json:"question_id"`
	UserResponse string `json:"user_response"`
	TimeTaken    int    `json:"time_taken"`
}

type SubmitResponse struct {
	ResponseID string   `json:"response_id"`
	Grade      *float64 `json:"grade"`
	Feedback   string   `json:"feedback"`
}
