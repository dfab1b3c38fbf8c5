package question

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var q QuizQuestion
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		log.WithError(err).Error("Invalid request body for question create")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}

	if err := h.service.CreateQuestion(r.Context(), &q); err != nil {
		if errors.Is(err, ErrInvalidQuestion) {
			http.Error(w, "invalid question", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	difficulty := Difficulty(r.URL.Query().Get("difficulty"))
	subject := r.URL.Query().Get("subject")

	questions, err := h.service.ListQuestions(r.Context(), difficulty, subject)
	if err != nil {
		if errors.Is(err, ErrInvalidQuestion) {
			http.Error(w, "invalid difficulty", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to list questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questionID := chi.URLParam(r, "id")
	if questionID == "" {
		http.Error(w, "question id required", http.StatusBadRequest)
		return
	}

	var patch UpdateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.WithError(err).Error("Invalid request body for question update")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q, err := h.service.UpdateQuestion(r.Context(), questionID, &patch)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}
