package attempt

import (
	"github.com/saulo-duarte/dailyquiz-lambda/internal/quizlimit"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/session"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/userstats"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Handler *Handler
}

func NewAttemptContainer(
	db *gorm.DB,
	sessionSvc session.SessionService,
	limitSvc quizlimit.LimitService,
	statsRepo userstats.StatsRepository,
) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, sessionSvc, limitSvc, statsRepo)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
	}
}
