package attempt

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/quizlimit"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/session"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/userstats"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNoActiveSession  = errors.New("no active quiz session for today")
	ErrLimitExceeded    = errors.New("daily quiz limit exceeded")
	ErrAlreadySubmitted = errors.New("attempt already submitted today")
)

type AttemptService interface {
	SubmitAttempt(ctx context.Context, userID uuid.UUID, dto *SubmitAttemptDTO) (*AttemptResult, error)
	GetTodayAttempt(ctx context.Context, userID uuid.UUID) (*UserAttempt, error)
}

type attemptService struct {
	repo       AttemptRepository
	sessionSvc session.SessionService
	limitSvc   quizlimit.LimitService
	statsRepo  userstats.StatsRepository
}

func NewService(
	repo AttemptRepository,
	sessionSvc session.SessionService,
	limitSvc quizlimit.LimitService,
	statsRepo userstats.StatsRepository,
) AttemptService {
	return &attemptService{
		repo:       repo,
		sessionSvc: sessionSvc,
		limitSvc:   limitSvc,
		statsRepo:  statsRepo,
	}
}

// SubmitAttempt grades and records today's attempt. The quota check is only
// a gate; the real at-most-once serialization point is the unique-key insert
// of the attempt row, which turns a lost race into ErrAlreadySubmitted
// instead of double credit.
func (s *attemptService) SubmitAttempt(ctx context.Context, userID uuid.UUID, dto *SubmitAttemptDTO) (*AttemptResult, error) {
	log := config.WithContext(ctx)
	today := util.Today()

	sess, err := s.sessionSvc.FindSession(ctx, today)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	status, err := s.limitSvc.CheckAndMaybeReset(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.CanAttempt {
		return nil, ErrLimitExceeded
	}

	questions, err := s.sessionSvc.GetSessionQuestions(ctx, sess)
	if err != nil {
		return nil, err
	}

	graded := grade(questions, dto.Answers)

	answersJSON, err := json.Marshal(graded.answers)
	if err != nil {
		return nil, err
	}

	timeSpent := dto.TimeSpentSeconds
	if timeSpent < 0 {
		timeSpent = 0
	}

	a := &UserAttempt{
		ID:                uuid.New(),
		UserID:            userID,
		SessionID:         sess.ID,
		QuizDate:          today,
		Answers:           answersJSON,
		CorrectCount:      graded.correctCount,
		ScorePercentage:   graded.scorePercentage,
		TotalPointsEarned: graded.totalPointsEarned,
		TimeSpentSeconds:  timeSpent,
	}

	if err := s.repo.Create(a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.WithField("user_id", userID.String()).Warn("Duplicate attempt blocked by unique constraint")
			return nil, ErrAlreadySubmitted
		}
		log.WithError(err).Error("Failed to record attempt")
		return nil, err
	}

	// Post-processing only after the insert succeeded. Failures here must not
	// void the recorded attempt; the unique constraint keeps reruns safe.
	if err := s.limitSvc.ConsumeAttempt(ctx, userID); err != nil {
		log.WithError(err).Warn("Attempt recorded but quota increment failed")
	}
	if err := s.statsRepo.AddDeltas(userID, graded.xpEarned, graded.correctCount, today); err != nil {
		log.WithError(err).Warn("Attempt recorded but stats update failed")
	}

	log.WithFields(logrus.Fields{
		"user_id": userID.String(),
		"score":   graded.scorePercentage,
		"xp":      graded.xpEarned,
	}).Info("Attempt recorded")

	return &AttemptResult{
		Attempt:  a,
		Results:  graded.results,
		XPEarned: graded.xpEarned,
	}, nil
}

func (s *attemptService) GetTodayAttempt(ctx context.Context, userID uuid.UUID) (*UserAttempt, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.FindByUserAndDate(userID, util.Today())
	if err != nil {
		log.WithError(err).Error("Failed to load today's attempt")
		return nil, err
	}
	return a, nil
}
