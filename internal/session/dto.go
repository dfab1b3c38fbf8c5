package session

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
	"gorm.io/datatypes"
)

// PublicQuestion is the client-facing question view. The correct answer and
// explanation are withheld until the attempt is graded.
type PublicQuestion struct {
	ID         uuid.UUID           `json:"id"`
	Content    string              `json:"content"`
	Options    datatypes.JSON      `json:"options"`
	Subject    string              `json:"subject"`
	Difficulty question.Difficulty `json:"difficulty"`
	Points     int                 `json:"points"`
}

type SessionWithQuestionsDTO struct {
	Session   *QuizSession     `json:"session"`
	Questions []PublicQuestion `json:"questions"`
}

func NewSessionWithQuestionsDTO(s *QuizSession, questions []*question.QuizQuestion) *SessionWithQuestionsDTO {
	public := make([]PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, PublicQuestion{
			ID:         q.ID,
			Content:    q.Content,
			Options:    q.Options,
			Subject:    q.Subject,
			Difficulty: q.Difficulty,
			Points:     q.Points,
		})
	}
	return &SessionWithQuestionsDTO{
		Session:   s,
		Questions: public,
	}
}
