package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/factum-app/factum/internal/api"
	apiMiddleware "github.com/factum-app/factum/internal/api/middleware"
	"github.com/factum-app/factum/internal/domain"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.identity, app.logger)
	chatHandler := api.NewChatHandler(app.chat, app.logger)
	quizHandler := api.NewQuizHandler(app.quiz, app.logger)
	journeyHandler := api.NewJourneyHandler(app.journey, app.logger)
	sleepHandler := api.NewSleepHandler(app.sleep, app.logger)
	challengeHandler := api.NewChallengeHandler(app.challenge, app.logger)
	catalogHandler := api.NewCatalogHandler()

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Session endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Profile endpoints
		r.Get("/profile", authHandler.GetProfile)
		r.Put("/profile/settings", authHandler.UpdateSettings)

		// Static catalog endpoints
		r.Get("/companions", catalogHandler.GetCompanions)
		r.Get("/levels", catalogHandler.GetLevels)

		// Quiz endpoints
		r.Get("/quiz/matching", quizHandler.GetMatchingQuestions)
		r.Post("/quiz/matching", quizHandler.SubmitMatching)
		r.Get("/quiz/daily", quizHandler.GetDailyQuestions)
		r.Post("/quiz/daily", quizHandler.SubmitDaily)
		r.Get("/quiz/daily/history", quizHandler.GetCheckIns)

		// Conversation endpoints
		r.Get("/chat", chatHandler.GetHistory)
		r.Post("/chat", chatHandler.SendMessage)

		// Marathon endpoints
		r.Get("/journey", journeyHandler.GetStatus)
		r.Get("/journey/questions", journeyHandler.GetQuestions)
		r.Post("/journey/check-in", journeyHandler.CheckIn)

		// Sleep endpoints
		r.Get("/sleep", sleepHandler.GetPlan)
		r.Post("/sleep", sleepHandler.CreatePlan)
		r.Post("/sleep/quality", sleepHandler.ScoreQuality)

		// Challenge endpoints
		r.Get("/challenges", challengeHandler.ListChallenges)
		r.Post("/challenges/{id}/complete", challengeHandler.CompleteChallenge)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// domainLanguage maps the configured fallback language onto the domain
// type, defaulting to English for anything unexpected.
func domainLanguage(lang string) domain.Language {
	l := domain.Language(lang)
	if !l.Valid() {
		return domain.LanguageEN
	}
	return l
}
