package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/attempt"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/auth"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/middlewares"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/quizlimit"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/session"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/user"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/userstats"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	SessionHandler  *session.Handler
	LimitHandler    *quizlimit.Handler
	AttemptHandler  *attempt.Handler
	StatsHandler    *userstats.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Get("/users/me/stats", cfg.StatsHandler.GetMyStats)

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/today", cfg.SessionHandler.GetTodaySession)
			r.Get("/limits", cfg.LimitHandler.GetUserLimits)
			r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole("admin"))
			r.Mount("/questions", question.Routes(cfg.QuestionHandler))
			r.Put("/users/{id}/premium", cfg.LimitHandler.SetUserPremium)
			r.Delete("/sessions/today", cfg.SessionHandler.DeactivateTodaySession)
		})
	})
	return r
}
