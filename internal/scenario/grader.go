package scenario

import "context"

// GradingInput is everything the external model needs to judge a response.
// ReferenceAnswer may be empty; the prompt then instructs the model to fall
// back to general domain judgment.
type GradingInput struct {
	Prompt          string
	ReferenceAnswer string
	Submission      string
}

type GradingResult struct {
	Score    float64
	Feedback string
}

// Grader is the external scoring oracle. Implementations are best-effort:
// any error (unreachable, timeout, unparseable output) makes the orchestrator
// degrade to an ungraded submission instead of failing it.
type Grader interface {
	Grade(ctx context.Context, input GradingInput) (*GradingResult, error)
}
