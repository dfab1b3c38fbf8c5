package quizlimit

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/auth"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
)

type Handler struct {
	service LimitService
}

func NewHandler(s LimitService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetUserLimits(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	status, err := h.service.CheckAndMaybeReset(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load user limits")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, status)
}

func (h *Handler) SetUserPremium(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var dto SetPremiumDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for premium update")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	status, err := h.service.SetPremium(r.Context(), userID, &dto)
	if err != nil {
		log.WithError(err).Error("Failed to update premium plan")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, status)
}
