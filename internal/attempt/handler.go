package attempt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/auth"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/session"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto SubmitAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for attempt submission")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitAttempt(r.Context(), uuid.MustParse(claims.UserID), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveSession):
			http.Error(w, "no active quiz session for today", http.StatusNotFound)
		case errors.Is(err, ErrLimitExceeded):
			http.Error(w, "daily quiz limit exceeded", http.StatusTooManyRequests)
		case errors.Is(err, ErrAlreadySubmitted):
			http.Error(w, "attempt already submitted today", http.StatusConflict)
		case errors.Is(err, session.ErrSessionUnavailable):
			http.Error(w, "session unavailable, retry", http.StatusServiceUnavailable)
		default:
			log.WithError(err).Error("Failed to submit attempt")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, result)
}

func (h *Handler) GetTodayAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	a, err := h.service.GetTodayAttempt(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load today's attempt")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "no attempt today", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, a)
}
