package quizlimit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LimitService interface {
	CheckAndMaybeReset(ctx context.Context, userID uuid.UUID) (*LimitStatus, error)
	ConsumeAttempt(ctx context.Context, userID uuid.UUID) error
	SetPremium(ctx context.Context, userID uuid.UUID, dto *SetPremiumDTO) (*LimitStatus, error)
}

type limitService struct {
	repo LimitRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo LimitRepository) LimitService {
	return &limitService{
		repo: repo,
		db:   db,
	}
}

// CheckAndMaybeReset is the combined quota check. Lazy row creation, the
// date-rollover reset and the read all run in one transaction; the reset is
// a single conditional UPDATE, never a read-modify-write from the
// application, so two concurrent checks cannot both observe a stale counter.
func (s *limitService) CheckAndMaybeReset(ctx context.Context, userID uuid.UUID) (*LimitStatus, error) {
	log := config.WithContext(ctx)
	today := util.Today()

	var limit UserQuizLimit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&UserQuizLimit{
			UserID:          userID,
			DailyLimit:      DefaultDailyLimit,
			AttemptsToday:   0,
			LastAttemptDate: today,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&UserQuizLimit{}).
			Where("user_id = ? AND last_attempt_date <> ?", userID, today).
			Updates(map[string]interface{}{
				"attempts_today":    0,
				"last_attempt_date": today,
			}).Error; err != nil {
			return err
		}

		return tx.First(&limit, "user_id = ?", userID).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to check quiz limit")
		return nil, err
	}

	return buildStatus(&limit, time.Now()), nil
}

func buildStatus(limit *UserQuizLimit, now time.Time) *LimitStatus {
	status := &LimitStatus{
		AttemptsToday: limit.AttemptsToday,
		DailyLimit:    limit.DailyLimit,
		IsPremium:     limit.PremiumActive(now),
	}

	if status.IsPremium || limit.DailyLimit == UnlimitedDailyLimit {
		status.CanAttempt = true
		status.Remaining = UnlimitedRemaining
		return status
	}

	status.CanAttempt = limit.AttemptsToday < limit.DailyLimit
	status.Remaining = limit.DailyLimit - limit.AttemptsToday
	if status.Remaining < 0 {
		status.Remaining = 0
	}
	return status
}

// SetPremium upserts the user's plan. The upsert only touches the plan
// columns, so an existing row keeps its attempt counter and date.
func (s *limitService) SetPremium(ctx context.Context, userID uuid.UUID, dto *SetPremiumDTO) (*LimitStatus, error) {
	log := config.WithContext(ctx)

	dailyLimit := DefaultDailyLimit
	if dto.IsPremium {
		dailyLimit = UnlimitedDailyLimit
	}
	if dto.DailyLimit != nil {
		dailyLimit = *dto.DailyLimit
	}

	if err := s.repo.SetPremium(&UserQuizLimit{
		UserID:          userID,
		DailyLimit:      dailyLimit,
		LastAttemptDate: util.Today(),
		IsPremium:       dto.IsPremium,
		PremiumExpiry:   dto.PremiumExpiry,
	}); err != nil {
		log.WithError(err).Error("Failed to update premium plan")
		return nil, err
	}

	stored, err := s.repo.Get(userID)
	if err != nil {
		log.WithError(err).Error("Failed to reload quiz limit")
		return nil, err
	}

	log.WithField("user_id", userID.String()).Info("Premium plan updated")
	return buildStatus(stored, time.Now()), nil
}

// ConsumeAttempt is called only after an attempt row has been recorded.
func (s *limitService) ConsumeAttempt(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.IncrementAttempts(userID, util.Today()); err != nil {
		log.WithError(err).Error("Failed to consume quiz attempt")
		return err
	}
	return nil
}
