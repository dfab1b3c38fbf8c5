package quizlimit

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
)

const (
	// DefaultDailyLimit applies to lazily created rows for free users.
	DefaultDailyLimit = 1

	// UnlimitedDailyLimit is the stored sentinel for premium accounts.
	UnlimitedDailyLimit = -1

	// UnlimitedRemaining is what "remaining" reports when no real cap applies.
	UnlimitedRemaining = 9999
)

// UserQuizLimit tracks one user's daily attempt quota. One row per user;
// the date rollover reset and the quota check happen inside a single
// transaction so concurrent requests cannot both pass on stale counts.
type UserQuizLimit struct {
	UserID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	DailyLimit      int            `gorm:"not null;default:1" json:"daily_limit"`
	AttemptsToday   int            `gorm:"not null;default:0" json:"attempts_today"`
	LastAttemptDate util.LocalDate `gorm:"type:date;not null" json:"last_attempt_date"`
	IsPremium       bool           `gorm:"not null;default:false" json:"is_premium"`
	PremiumExpiry   *time.Time     `json:"premium_expiry,omitempty"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserQuizLimit) TableName() string {
	return "user_quiz_limits"
}

// PremiumActive reports whether the premium flag is in effect at now.
func (l *UserQuizLimit) PremiumActive(now time.Time) bool {
	if !l.IsPremium {
		return false
	}
	return l.PremiumExpiry == nil || l.PremiumExpiry.After(now)
}
