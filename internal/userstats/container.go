package userstats

import "gorm.io/gorm"

type StatsContainer struct {
	Handler *Handler
	Repo    StatsRepository
}

func NewStatsContainer(db *gorm.DB) *StatsContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &StatsContainer{
		Handler: handler,
		Repo:    repo,
	}
}
