package scenario

import "fmt"

const gradingSystemPrompt = `You are an expert grader for investigative exam scenario questions.
You evaluate responses based on:
- Knowledge of the relevant laws and procedures
- Correct application of departmental directives
- Logical reasoning and decision-making
- Clarity and completeness of the response

Provide a grade from 0-100 and detailed feedback.
Respond in this exact format and nothing else:
GRADE: [number 0-100]
FEEDBACK: [detailed feedback explaining the grade, what was correct, what was missing, and how to improve]`

const fallbackReference = "No model answer is available. Use your best judgment based on standard procedures and applicable law."

// BuildGradingPrompt assembles the user prompt with labeled sections so the
// model's answer can be parsed back deterministically.
func BuildGradingPrompt(input GradingInput) string {
	reference := input.ReferenceAnswer
	if reference == "" {
		reference = fallbackReference
	}

	return fmt.Sprintf(`Grade this exam scenario response.

SCENARIO:
%s

CORRECT ANSWER/KEY POINTS:
%s

STUDENT RESPONSE:
%s

Remember: reply with GRADE: and FEEDBACK: lines only.`,
		input.Prompt, reference, input.Submission)
}
