package session

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
)

type Handler struct {
	service SessionService
}

func NewHandler(s SessionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetTodaySession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, err := h.service.GetOrCreateSession(r.Context(), util.Today())
	if err != nil {
		if errors.Is(err, ErrSessionUnavailable) {
			http.Error(w, "session unavailable, retry", http.StatusServiceUnavailable)
			return
		}
		log.WithError(err).Error("Failed to get today's session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	questions, err := h.service.GetSessionQuestions(r.Context(), sess)
	if err != nil {
		log.WithError(err).Error("Failed to load today's questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, NewSessionWithQuestionsDTO(sess, questions))
}

func (h *Handler) DeactivateTodaySession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeactivateSession(r.Context(), util.Today()); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "no session today", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to deactivate today's session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "session deactivated"})
}
