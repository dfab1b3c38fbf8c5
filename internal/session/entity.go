package session

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"gorm.io/datatypes"
)

// QuizSession is the single shared question set for one calendar date.
// The unique index on quiz_date is what guarantees "one session per day":
// concurrent creators race on the insert and the loser re-reads the winner's
// row. Sessions are never mutated after creation except to be deactivated.
type QuizSession struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuizDate               util.LocalDate `gorm:"type:date;not null;uniqueIndex" json:"quiz_date"`
	SelectedQuestions      datatypes.JSON `gorm:"type:jsonb;not null" json:"selected_questions"`
	TotalQuestions         int            `gorm:"not null" json:"total_questions"`
	TotalPoints            int            `gorm:"not null" json:"total_points"`
	DifficultyDistribution datatypes.JSON `gorm:"type:jsonb;not null" json:"difficulty_distribution"`
	Active                 bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt              time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}
