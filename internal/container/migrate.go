package container

import (
	"github.com/saulo-duarte/dailyquiz-lambda/internal/attempt"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/quizlimit"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/session"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/user"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/userstats"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&question.QuizQuestion{},
		&session.QuizSession{},
		&quizlimit.UserQuizLimit{},
		&attempt.UserAttempt{},
		&userstats.UserStats{},
	)
}
