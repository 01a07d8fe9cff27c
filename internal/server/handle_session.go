package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gramquest/villagegame/internal/game"
)

type CreateSessionRequest struct {
	VillageID int64 `json:"villageId"`
	SectorID  int64 `json:"sectorId"`
}

type FinishSessionResponse struct {
	Score  game.SectorScore `json:"score"`
	Record ScoreRecord      `json:"record"`
}

func handleCreateSession(store Store, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user := userFrom(r)

		if _, err := store.VillageByID(r.Context(), req.VillageID); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "village not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		sector, err := store.SectorByID(r.Context(), req.SectorID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "sector not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		sess := sessions.Create(user.ID, req.VillageID, sector)
		writeJSON(w, http.StatusCreated, sess.State())
	}
}

// sessionFromRequest resolves {sessionID} and checks ownership. A
// session another user owns is indistinguishable from a missing one.
func sessionFromRequest(r *http.Request, sessions *Sessions) (*game.SectorSession, bool) {
	sess, ok := sessions.Get(chi.URLParam(r, "sessionID"))
	if !ok || sess.UserID != userFrom(r).ID {
		return nil, false
	}
	return sess, true
}

func handleGetSession(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}

func handleFinishSession(logger *slog.Logger, store Store, sessions *Sessions, lb *Leaderboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		score, err := sess.Finish()
		if errors.Is(err, game.ErrSessionFinished) {
			writeError(w, http.StatusConflict, "session already finished")
			return
		}
		if err != nil {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		rec := ScoreRecord{
			UserID:              sess.UserID,
			VillageID:           sess.VillageID,
			DevelopmentScore:    score.DevelopmentScore,
			BudgetEfficiency:    score.BudgetEfficiency,
			EnvironmentalImpact: score.EnvironmentalImpact,
		}

		// One write per finish. A transient failure gets a single
		// retry after a short backoff; after that the session is
		// settled but unrecorded and the client sees 503.
		saved, err := store.CreateScore(r.Context(), rec)
		if err != nil {
			logger.Warn("score write failed, retrying", "session", sess.ID, "error", err)
			time.Sleep(200 * time.Millisecond)
			saved, err = store.CreateScore(r.Context(), rec)
		}
		if err != nil {
			logger.Error("score write failed", "session", sess.ID, "error", err)
			sessions.Remove(sess.ID)
			writeError(w, http.StatusServiceUnavailable, "could not save score")
			return
		}

		lb.Invalidate(r.Context())
		sessions.Remove(sess.ID)

		writeJSON(w, http.StatusOK, FinishSessionResponse{Score: score, Record: saved})
	}
}

func handleAbandonSession(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		sessions.Remove(sess.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}
