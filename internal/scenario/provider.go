package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/examtrack/examtrack-api/internal/config"
)

const geminiModel = "gemini-2.0-flash"

type geminiGrader struct {
	client *genai.Client
}

// NewGeminiGrader builds the Gemini-backed oracle. The client reads its API
// key from the environment.
func NewGeminiGrader(ctx context.Context) (Grader, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGrader{client: client}, nil
}

func (g *geminiGrader) Grade(ctx context.Context, input GradingInput) (*GradingResult, error) {
	log := config.WithContext(ctx).WithField("grading_session", uuid.NewString()[:8])

	prompt := gradingSystemPrompt + "\n\n" + BuildGradingPrompt(input)

	result, err := g.client.Models.GenerateContent(
		ctx,
		geminiModel,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Warn("Gemini grading call failed")
		return nil, fmt.Errorf("failed to generate grading content: %w", err)
	}

	raw := result.Text()
	log.Debugf("Raw grading response:\n%s", raw)

	if raw == "" {
		return nil, errors.New("empty response from grading model")
	}

	graded, err := ParseGradedResponse(raw)
	if err != nil {
		log.WithError(err).Warnf("Unparseable grading response:\n%s", raw)
		return nil, err
	}

	log.Infof("Graded scenario submission with score %.1f", graded.Score)
	return graded, nil
}
