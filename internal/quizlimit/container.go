package quizlimit

import "gorm.io/gorm"

type LimitContainer struct {
	Handler *Handler
	Service LimitService
}

func NewLimitContainer(db *gorm.DB) *LimitContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &LimitContainer{
		Handler: handler,
		Service: service,
	}
}
