package userstats

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/auth"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
)

type Handler struct {
	repo StatsRepository
}

func NewHandler(repo StatsRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	stats, err := h.repo.Get(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if stats == nil {
		stats = &UserStats{UserID: userID}
	}

	config.JSON(w, http.StatusOK, stats)
}
