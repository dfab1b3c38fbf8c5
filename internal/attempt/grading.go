package attempt

import (
	"math"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
)

const (
	xpBase       = 50
	xpPerCorrect = 5
)

const unanswered = -1

type gradedAttempt struct {
	answers           []int
	results           []QuestionResult
	correctCount      int
	totalPointsEarned int
	scorePercentage   int
	xpEarned          int
}

// grade scores a submission against the session's questions in order.
// Missing trailing answers count as unanswered; any value outside the option
// range is stored as unanswered and graded incorrect, never rejected.
func grade(questions []*question.QuizQuestion, submitted []int) *gradedAttempt {
	g := &gradedAttempt{
		answers: make([]int, len(questions)),
		results: make([]QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		answer := unanswered
		if i < len(submitted) && submitted[i] >= 0 && submitted[i] <= 3 {
			answer = submitted[i]
		}
		g.answers[i] = answer

		correct := answer == q.CorrectAnswer
		if correct {
			g.correctCount++
			g.totalPointsEarned += q.Points
		}

		g.results = append(g.results, QuestionResult{
			QuestionID:    q.ID,
			ChosenAnswer:  answer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
			Explanation:   q.Explanation,
			Points:        q.Points,
		})
	}

	if len(questions) > 0 {
		g.scorePercentage = int(math.Round(float64(g.correctCount) / float64(len(questions)) * 100))
	}
	g.xpEarned = xpBase + xpPerCorrect*g.correctCount

	return g
}
