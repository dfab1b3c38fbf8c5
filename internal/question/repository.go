package question

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(q *QuizQuestion) error
	GetByID(id string) (*QuizQuestion, error)
	GetByIDs(ids []uuid.UUID) ([]*QuizQuestion, error)
	ListActiveByDifficulty(difficulty Difficulty) ([]*QuizQuestion, error)
	List(difficulty Difficulty, subject string) ([]*QuizQuestion, error)
	Update(q *QuizQuestion) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(q *QuizQuestion) error {
	return r.db.Create(q).Error
}

func (r *questionRepository) GetByID(id string) (*QuizQuestion, error) {
	var q QuizQuestion
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) GetByIDs(ids []uuid.UUID) ([]*QuizQuestion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []*QuizQuestion
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListActiveByDifficulty(difficulty Difficulty) ([]*QuizQuestion, error) {
	var questions []*QuizQuestion
	if err := r.db.
		Where("active = ? AND difficulty = ?", true, difficulty).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) List(difficulty Difficulty, subject string) ([]*QuizQuestion, error) {
	tx := r.db.Order("created_at DESC")
	if difficulty != "" {
		tx = tx.Where("difficulty = ?", difficulty)
	}
	if subject != "" {
		tx = tx.Where("subject = ?", subject)
	}

	var questions []*QuizQuestion
	if err := tx.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(q *QuizQuestion) error {
	return r.db.Save(q).Error
}
