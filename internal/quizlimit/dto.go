package quizlimit

import "time"

// SetPremiumDTO is the admin plan-change payload. DailyLimit overrides the
// plan default when set.
type SetPremiumDTO struct {
	IsPremium     bool       `json:"is_premium"`
	DailyLimit    *int       `json:"daily_limit"`
	PremiumExpiry *time.Time `json:"premium_expiry"`
}

type LimitStatus struct {
	CanAttempt    bool `json:"can_attempt"`
	Remaining     int  `json:"remaining"`
	AttemptsToday int  `json:"attempts_today"`
	DailyLimit    int  `json:"daily_limit"`
	IsPremium     bool `json:"is_premium"`
}
