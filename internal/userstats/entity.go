package userstats

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
)

// UserStats is the per-user aggregate row. It is only ever written through
// additive upserts; a blind overwrite would drop concurrent increments from
// other activity.
type UserStats struct {
	UserID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	TotalXP          int            `gorm:"not null;default:0" json:"total_xp"`
	QuizzesCompleted int            `gorm:"not null;default:0" json:"quizzes_completed"`
	TotalCorrect     int            `gorm:"not null;default:0" json:"total_correct"`
	LastActivityDate util.LocalDate `gorm:"type:date" json:"last_activity_date"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
