package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.SubmitAttempt)
	r.Get("/today", h.GetTodayAttempt)
	return r
}
