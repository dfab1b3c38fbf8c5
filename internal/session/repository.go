package session

import (
	"errors"

	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(s *QuizSession) error
	FindByDate(date util.LocalDate) (*QuizSession, error)
	Deactivate(id string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(s *QuizSession) error {
	return r.db.Create(s).Error
}

func (r *sessionRepository) FindByDate(date util.LocalDate) (*QuizSession, error) {
	var s QuizSession
	if err := r.db.First(&s, "quiz_date = ? AND active = ?", date, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Deactivate(id string) error {
	return r.db.Model(&QuizSession{}).Where("id = ?", id).Update("active", false).Error
}
