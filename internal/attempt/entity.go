package attempt

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"gorm.io/datatypes"
)

// UserAttempt is one user's single graded submission for one day. The
// composite unique index on (user_id, quiz_date) is the at-most-once
// guarantee: a second concurrent submission fails on insert even when both
// requests passed the quota check moments earlier. Rows are never mutated
// or deleted.
type UserAttempt struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_attempts_user_date,priority:1" json:"user_id"`
	SessionID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"session_id"`
	QuizDate          util.LocalDate `gorm:"type:date;not null;uniqueIndex:idx_user_attempts_user_date,priority:2" json:"quiz_date"`
	Answers           datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	CorrectCount      int            `gorm:"not null" json:"correct_count"`
	ScorePercentage   int            `gorm:"not null" json:"score_percentage"`
	TotalPointsEarned int            `gorm:"not null" json:"total_points_earned"`
	TimeSpentSeconds  int            `gorm:"not null;default:0" json:"time_spent_seconds"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (UserAttempt) TableName() string {
	return "user_attempts"
}
