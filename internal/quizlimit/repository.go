package quizlimit

import (
	"errors"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LimitRepository interface {
	Get(userID uuid.UUID) (*UserQuizLimit, error)
	IncrementAttempts(userID uuid.UUID, today util.LocalDate) error
	SetPremium(l *UserQuizLimit) error
}

type limitRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) LimitRepository {
	return &limitRepository{db: db}
}

func (r *limitRepository) Get(userID uuid.UUID) (*UserQuizLimit, error) {
	var l UserQuizLimit
	if err := r.db.First(&l, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// IncrementAttempts is a single UPDATE so that consuming an attempt never
// reads-then-writes the counter.
func (r *limitRepository) IncrementAttempts(userID uuid.UUID, today util.LocalDate) error {
	return r.db.Model(&UserQuizLimit{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"attempts_today":    gorm.Expr("attempts_today + 1"),
			"last_attempt_date": today,
		}).Error
}

func (r *limitRepository) SetPremium(l *UserQuizLimit) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"daily_limit",
			"is_premium",
			"premium_expiry",
		}),
	}).Create(l).Error
}
