package scenario

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	gradeMarker    = "GRADE:"
	feedbackMarker = "FEEDBACK:"
)

var (
	ErrMissingMarkers = errors.New("grading response missing GRADE/FEEDBACK markers")
	ErrInvalidScore   = errors.New("grading response score is not a number in [0,100]")
)

// ParseGradedResponse extracts the score and feedback from the model's raw
// output. The oracle is untrusted: markers may be absent, wrapped in code
// fences, or carry a malformed number, and every such case is an error the
// caller degrades on.
func ParseGradedResponse(raw string) (*GradingResult, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	gradeIdx := strings.Index(clean, gradeMarker)
	if gradeIdx < 0 {
		return nil, ErrMissingMarkers
	}
	rest := clean[gradeIdx+len(gradeMarker):]

	feedbackIdx := strings.Index(rest, feedbackMarker)
	if feedbackIdx < 0 {
		return nil, ErrMissingMarkers
	}

	scoreText := strings.TrimSpace(rest[:feedbackIdx])
	scoreText = strings.Trim(scoreText, "[]")
	score, err := strconv.ParseFloat(scoreText, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScore, scoreText)
	}
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}

	feedback := strings.TrimSpace(rest[feedbackIdx+len(feedbackMarker):])
	if feedback == "" {
		return nil, ErrMissingMarkers
	}

	return &GradingResult{Score: score, Feedback: feedback}, nil
}
