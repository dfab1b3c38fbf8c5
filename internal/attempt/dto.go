package attempt

import (
	"github.com/google/uuid"
)

type SubmitAttemptDTO struct {
	Answers          []int `json:"answers"`
	TimeSpentSeconds int   `json:"time_spent_seconds"`
}

type QuestionResult struct {
	QuestionID    uuid.UUID `json:"question_id"`
	ChosenAnswer  int       `json:"chosen_answer"`
	CorrectAnswer int       `json:"correct_answer"`
	Correct       bool      `json:"correct"`
	Explanation   string    `json:"explanation,omitempty"`
	Points        int       `json:"points"`
}

type AttemptResult struct {
	Attempt  *UserAttempt     `json:"attempt"`
	Results  []QuestionResult `json:"results"`
	XPEarned int              `json:"xp_earned"`
}
