package session

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionUnavailable = errors.New("quiz session unavailable, retry")
	ErrSessionNotFound    = errors.New("no session for date")
)

// Default stratified sampling targets per difficulty bucket.
const (
	DefaultEasyCount   = 8
	DefaultMediumCount = 8
	DefaultHardCount   = 4
)

type SessionService interface {
	GetOrCreateSession(ctx context.Context, date util.LocalDate) (*QuizSession, error)
	FindSession(ctx context.Context, date util.LocalDate) (*QuizSession, error)
	GetSessionQuestions(ctx context.Context, s *QuizSession) ([]*question.QuizQuestion, error)
	DeactivateSession(ctx context.Context, date util.LocalDate) error
}

type sessionService struct {
	repo         SessionRepository
	questionRepo question.QuestionRepository
}

func NewService(repo SessionRepository, questionRepo question.QuestionRepository) SessionService {
	return &sessionService{
		repo:         repo,
		questionRepo: questionRepo,
	}
}

// GetOrCreateSession returns the session for the given date, building it on
// first request. Creation is make-or-fetch: the insert races on the
// quiz_date unique index and a duplicate-key loser re-reads the winner's row,
// so no two sessions can ever exist for one date.
func (s *sessionService) GetOrCreateSession(ctx context.Context, date util.LocalDate) (*QuizSession, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByDate(date)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz session")
		return nil, ErrSessionUnavailable
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.buildSession(ctx, date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(created); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.WithField("quiz_date", date.String()).Info("Lost the session creation race, fetching existing session")
		} else {
			log.WithError(err).Error("Failed to insert quiz session")
		}

		// Either way the row may exist now; one re-read settles it.
		existing, ferr := s.repo.FindByDate(date)
		if ferr != nil || existing == nil {
			return nil, ErrSessionUnavailable
		}
		return existing, nil
	}

	log.WithFields(logrus.Fields{
		"quiz_date":       date.String(),
		"total_questions": created.TotalQuestions,
	}).Info("Quiz session created")
	return created, nil
}

// FindSession never creates: attempt submission requires the session to
// already exist.
func (s *sessionService) FindSession(ctx context.Context, date util.LocalDate) (*QuizSession, error) {
	sess, err := s.repo.FindByDate(date)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to look up quiz session")
		return nil, ErrSessionUnavailable
	}
	return sess, nil
}

// DeactivateSession retires the session for a date. The date stays burned:
// the unique index prevents a replacement from being built for the same day,
// so submissions fail with no active session until the next rollover.
func (s *sessionService) DeactivateSession(ctx context.Context, date util.LocalDate) error {
	log := config.WithContext(ctx)

	sess, err := s.repo.FindByDate(date)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz session")
		return err
	}
	if sess == nil {
		return ErrSessionNotFound
	}

	if err := s.repo.Deactivate(sess.ID.String()); err != nil {
		log.WithError(err).Error("Failed to deactivate quiz session")
		return err
	}

	log.WithField("quiz_date", date.String()).Info("Quiz session deactivated")
	return nil
}

func (s *sessionService) buildSession(ctx context.Context, date util.LocalDate) (*QuizSession, error) {
	log := config.WithContext(ctx)

	targets := []struct {
		difficulty question.Difficulty
		count      int
	}{
		{question.DifficultyEasy, DefaultEasyCount},
		{question.DifficultyMedium, DefaultMediumCount},
		{question.DifficultyHard, DefaultHardCount},
	}

	var selected []uuid.UUID
	totalPoints := 0
	distribution := map[question.Difficulty]int{}

	for _, target := range targets {
		bucket, err := s.questionRepo.ListActiveByDifficulty(target.difficulty)
		if err != nil {
			log.WithError(err).Error("Failed to load question bucket")
			return nil, ErrSessionUnavailable
		}

		drawn := sampleWithoutReplacement(bucket, target.count)
		if len(drawn) < target.count {
			log.Warnf("Question bucket %s has only %d of %d requested questions",
				target.difficulty, len(drawn), target.count)
		}

		for _, q := range drawn {
			selected = append(selected, q.ID)
			totalPoints += q.Points
		}
		distribution[target.difficulty] = len(drawn)
	}

	selectedJSON, err := json.Marshal(selected)
	if err != nil {
		return nil, err
	}
	distributionJSON, err := json.Marshal(distribution)
	if err != nil {
		return nil, err
	}

	return &QuizSession{
		ID:                     uuid.New(),
		QuizDate:               date,
		SelectedQuestions:      selectedJSON,
		TotalQuestions:         len(selected),
		TotalPoints:            totalPoints,
		DifficultyDistribution: distributionJSON,
		Active:                 true,
	}, nil
}

func sampleWithoutReplacement(bucket []*question.QuizQuestion, n int) []*question.QuizQuestion {
	shuffled := make([]*question.QuizQuestion, len(bucket))
	copy(shuffled, bucket)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// GetSessionQuestions resolves the session's question ids, preserving the
// stored order.
func (s *sessionService) GetSessionQuestions(ctx context.Context, sess *QuizSession) ([]*question.QuizQuestion, error) {
	log := config.WithContext(ctx)

	var ids []uuid.UUID
	if err := json.Unmarshal(sess.SelectedQuestions, &ids); err != nil {
		log.WithError(err).Error("Corrupt selected_questions payload")
		return nil, err
	}

	questions, err := s.questionRepo.GetByIDs(ids)
	if err != nil {
		log.WithError(err).Error("Failed to load session questions")
		return nil, err
	}

	byID := make(map[uuid.UUID]*question.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	ordered := make([]*question.QuizQuestion, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}

	// Sessions reference questions by id and bank rows must never be deleted
	// out from under one; a shrunk set means that invariant was broken.
	if len(ordered) != len(ids) {
		log.WithFields(logrus.Fields{
			"session_id": sess.ID.String(),
			"expected":   len(ids),
			"resolved":   len(ordered),
		}).Warn("Session references missing question rows")
	}
	return ordered, nil
}
