package userstats

import (
	"errors"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository interface {
	AddDeltas(userID uuid.UUID, xp, correct int, activityDate util.LocalDate) error
	Get(userID uuid.UUID) (*UserStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// AddDeltas upserts the stats row, incrementing in place. The assignments
// reference the stored columns so concurrent updates are both applied.
func (r *statsRepository) AddDeltas(userID uuid.UUID, xp, correct int, activityDate util.LocalDate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_xp":           gorm.Expr("user_stats.total_xp + ?", xp),
			"quizzes_completed":  gorm.Expr("user_stats.quizzes_completed + 1"),
			"total_correct":      gorm.Expr("user_stats.total_correct + ?", correct),
			"last_activity_date": activityDate,
		}),
	}).Create(&UserStats{
		UserID:           userID,
		TotalXP:          xp,
		QuizzesCompleted: 1,
		TotalCorrect:     correct,
		LastActivityDate: activityDate,
	}).Error
}

func (r *statsRepository) Get(userID uuid.UUID) (*UserStats, error) {
	var s UserStats
	if err := r.db.First(&s, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
