package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, rdb *redis.Client, sessions *Sessions, broker *Broker, spaDir string) {
	store := NewSQLiteStore(db)
	lb := NewLeaderboard(store, rdb, logger)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("VillageGame API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db, rdb))

	// Public API.
	r.Post("/api/register", handleRegister(store))
	r.Post("/api/login", handleLogin(store))
	r.Get("/api/states", handleListStates(store))
	r.Get("/api/states/{id}/villages", handleListVillages(store))
	r.Get("/api/villages/{id}", handleGetVillage(store))
	r.Get("/api/sectors", handleListSectors(store))
	r.Get("/api/scores", handleLeaderboard(lb))
	r.Post("/api/feedback", handleFeedback(store))
	r.Post("/api/chat", handleChat())

	// Authenticated API — Bearer token from register/login.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(store))

		r.Get("/api/user", handleCurrentUser())
		r.Get("/api/scores/me", handleMyScores(store))
		r.Post("/api/game/sessions", handleCreateSession(store, sessions))
	})

	r.Route("/api/game/sessions/{sessionID}", func(r chi.Router) {
		// SSE takes the token as a query parameter, outside the middleware.
		r.Get("/events", handleEvents(store, sessions, broker))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(store))

			r.Get("/", handleGetSession(sessions))
			r.Post("/finish", handleFinishSession(logger, store, sessions, lb))
			r.Delete("/", handleAbandonSession(sessions))

			r.Post("/allocation/start", handleStartAllocation(sessions))
			r.Post("/allocation/prioritize", handleAllocationPrioritize(sessions))
			r.Post("/allocation/reorder", handleAllocationReorder(sessions))
			r.Post("/allocation/finish", handleAllocationFinish(sessions))

			r.Post("/challenge/start", handleStartChallenge(sessions))
			r.Post("/challenge/answer", handleChallengeAnswer(sessions))

			r.Post("/quiz/start", handleStartQuiz(sessions))
			r.Post("/quiz/answer", handleQuizAnswer(sessions))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
