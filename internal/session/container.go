package session

import (
	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
	"gorm.io/gorm"
)

type SessionContainer struct {
	Handler *Handler
	Service SessionService
}

func NewSessionContainer(db *gorm.DB, questionRepo question.QuestionRepository) *SessionContainer {
	repo := NewRepository(db)
	service := NewService(repo, questionRepo)
	handler := NewHandler(service)

	return &SessionContainer{
		Handler: handler,
		Service: service,
	}
}
