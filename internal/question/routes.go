package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateQuestion)
	r.Get("/", h.ListQuestions)
	r.Patch("/{id}", h.UpdateQuestion)
	return r
}
