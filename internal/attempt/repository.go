package attempt

import (
	"errors"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(a *UserAttempt) error
	FindByUserAndDate(userID uuid.UUID, date util.LocalDate) (*UserAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *UserAttempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) FindByUserAndDate(userID uuid.UUID, date util.LocalDate) (*UserAttempt, error) {
	var a UserAttempt
	if err := r.db.First(&a, "user_id = ? AND quiz_date = ?", userID, date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
