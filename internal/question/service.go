package question

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuestion  = errors.New("invalid question")
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, q *QuizQuestion) error
	ListQuestions(ctx context.Context, difficulty Difficulty, subject string) ([]*QuizQuestion, error)
	UpdateQuestion(ctx context.Context, id string, patch *UpdateQuestionDTO) (*QuizQuestion, error)
}

type questionService struct {
	repo QuestionRepository
}

func NewService(repo QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func validateQuestion(q *QuizQuestion) error {
	if q.Content == "" {
		return ErrInvalidQuestion
	}
	if !q.Difficulty.IsValid() {
		return ErrInvalidQuestion
	}
	if q.Points < 0 {
		return ErrInvalidQuestion
	}

	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return ErrInvalidQuestion
	}
	if len(options) != 4 {
		return ErrInvalidQuestion
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(options) {
		return ErrInvalidQuestion
	}
	return nil
}

func (s *questionService) CreateQuestion(ctx context.Context, q *QuizQuestion) error {
	log := config.WithContext(ctx)

	if err := validateQuestion(q); err != nil {
		log.WithError(err).Warn("Rejected invalid question")
		return err
	}

	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return err
	}

	log.WithField("question_id", q.ID.String()).Info("Question created")
	return nil
}

func (s *questionService) ListQuestions(ctx context.Context, difficulty Difficulty, subject string) ([]*QuizQuestion, error) {
	log := config.WithContext(ctx)

	if difficulty != "" && !difficulty.IsValid() {
		return nil, ErrInvalidQuestion
	}

	questions, err := s.repo.List(difficulty, subject)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}
	return questions, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, patch *UpdateQuestionDTO) (*QuizQuestion, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load question")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	if patch.Content != nil {
		q.Content = *patch.Content
	}
	if patch.Explanation != nil {
		q.Explanation = *patch.Explanation
	}
	if patch.Subject != nil {
		q.Subject = *patch.Subject
	}
	if patch.Points != nil {
		q.Points = *patch.Points
	}
	if patch.Active != nil {
		q.Active = *patch.Active
	}

	// Answer-defining fields are immutable once published: sessions reference
	// questions by id and grading must stay stable.

	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}

	log.WithField("question_id", q.ID.String()).Info("Question updated")
	return q, nil
}
