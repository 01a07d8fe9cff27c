package server

import (
	"errors"
	"net/http"

	"github.com/gramquest/villagegame/internal/game"
)

// writeGameError maps mini-game rule violations to HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrSessionFinished),
		errors.Is(err, game.ErrAlreadySelected),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrAlreadyStarted),
		errors.Is(err, game.ErrNotSorting):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrSessionClosed),
		errors.Is(err, game.ErrNoActiveGame):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrUnknownItem),
		errors.Is(err, game.ErrUnknownOption),
		errors.Is(err, game.ErrBadPosition),
		errors.Is(err, game.ErrNotRevealed):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

type PrioritizeRequest struct {
	ItemID string `json:"itemId"`
}

type ReorderRequest struct {
	ItemID   string `json:"itemId"`
	Position int    `json:"position"`
}

func handleStartAllocation(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		if _, err := sess.StartAllocation(); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}

func handleAllocationPrioritize(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		var req PrioritizeRequest
		if err := readJSON(r, &req); err != nil || req.ItemID == "" {
			writeError(w, http.StatusBadRequest, "itemId is required")
			return
		}

		if err := sess.AllocationPrioritize(req.ItemID); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}

func handleAllocationReorder(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		var req ReorderRequest
		if err := readJSON(r, &req); err != nil || req.ItemID == "" {
			writeError(w, http.StatusBadRequest, "itemId and position are required")
			return
		}

		if err := sess.AllocationReorder(req.ItemID, req.Position); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}

func handleAllocationFinish(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		if _, err := sess.AllocationFinish(); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}
