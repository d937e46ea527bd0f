package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGradedResponse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantScore    float64
		wantFeedback string
	}{
		{
			name:         "plain format",
			raw:          "GRADE: 85\nFEEDBACK: Solid grasp of the procedure.",
			wantScore:    85,
			wantFeedback: "Solid grasp of the procedure.",
		},
		{
			name:         "bracketed score",
			raw:          "GRADE: [72.5]\nFEEDBACK: Missed the notification step.",
			wantScore:    72.5,
			wantFeedback: "Missed the notification step.",
		},
		{
			name:         "wrapped in code fences",
			raw:          "```\nGRADE: 100\nFEEDBACK: Complete and well reasoned.\n```",
			wantScore:    100,
			wantFeedback: "Complete and well reasoned.",
		},
		{
			name:         "preamble before markers",
			raw:          "Here is my evaluation:\nGRADE: 40\nFEEDBACK: Several key points missing.",
			wantScore:    40,
			wantFeedback: "Several key points missing.",
		},
		{
			name:         "multiline feedback",
			raw:          "GRADE: 0\nFEEDBACK: Incorrect approach.\nReview the use-of-force continuum.",
			wantScore:    0,
			wantFeedback: "Incorrect approach.\nReview the use-of-force continuum.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGradedResponse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantFeedback, got.Feedback)
		})
	}
}

func TestParseGradedResponse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty output", "", ErrMissingMarkers},
		{"no markers at all", "The student did a fine job overall.", ErrMissingMarkers},
		{"grade without feedback", "GRADE: 90", ErrMissingMarkers},
		{"feedback before grade", "FEEDBACK: good\nGRADE: 90", ErrMissingMarkers},
		{"empty feedback", "GRADE: 90\nFEEDBACK:", ErrMissingMarkers},
		{"non numeric score", "GRADE: ninety\nFEEDBACK: good", ErrInvalidScore},
		{"score above range", "GRADE: 150\nFEEDBACK: good", ErrInvalidScore},
		{"score below range", "GRADE: -5\nFEEDBACK: good", ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGradedResponse(tt.raw)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildGradingPrompt(t *testing.T) {
	prompt := BuildGradingPrompt(GradingInput{
		Prompt:          "You arrive at a two-car collision.",
		ReferenceAnswer: "Secure the scene, render aid, call EMS.",
		Submission:      "I would secure the scene first.",
	})

	assert.Contains(t, prompt, "You arrive at a two-car collision.")
	assert.Contains(t, prompt, "Secure the scene, render aid, call EMS.")
	assert.Contains(t, prompt, "I would secure the scene first.")
}

func TestBuildGradingPrompt_NoReferenceAnswer(t *testing.T) {
	prompt := BuildGradingPrompt(GradingInput{
		Prompt:     "Scenario text",
		Submission: "My answer",
	})

	assert.Contains(t, prompt, fallbackReference)
}
