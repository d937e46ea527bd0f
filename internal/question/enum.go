package question

type Type string

const (
	TypeFlashcard      Type = "flashcard"
	TypeScenario       Type = "scenario"
	TypeMultipleChoice Type = "multiple_choice"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFlashcard, TypeScenario, TypeMultipleChoice:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)
