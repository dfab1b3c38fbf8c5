package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/attempt"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/auth"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/quizlimit"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/session"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/user"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/userstats"
)

type Container struct {
	UserContainer     *user.UserContainer
	QuestionContainer *question.QuestionContainer
	SessionContainer  *session.SessionContainer
	LimitContainer    *quizlimit.LimitContainer
	AttemptContainer  *attempt.AttemptContainer
	StatsContainer    *userstats.StatsContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := migrate(config.DB); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	questionContainer := question.NewQuestionContainer(config.DB)
	sessionContainer := session.NewSessionContainer(config.DB, questionContainer.Repo)
	limitContainer := quizlimit.NewLimitContainer(config.DB)
	statsContainer := userstats.NewStatsContainer(config.DB)

	attemptContainer := attempt.NewAttemptContainer(
		config.DB,
		sessionContainer.Service,
		limitContainer.Service,
		statsContainer.Repo,
	)

	return &Container{
		UserContainer:     userContainer,
		QuestionContainer: questionContainer,
		SessionContainer:  sessionContainer,
		LimitContainer:    limitContainer,
		AttemptContainer:  attemptContainer,
		StatsContainer:    statsContainer,
	}
}
