package server

import (
	"net/http"
	"strings"
)

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

func handleFeedback(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FeedbackRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Message = strings.TrimSpace(req.Message)
		if req.Rating < 1 || req.Rating > 5 {
			writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
			return
		}
		if len(req.Message) > 2000 {
			writeError(w, http.StatusBadRequest, "message too long")
			return
		}

		fb := Feedback{Rating: req.Rating, Message: req.Message}
		// Feedback is accepted anonymously; a valid token attaches the user.
		if user, err := userFromRequest(r, store); err == nil {
			fb.UserID = &user.ID
		}

		if err := store.CreateFeedback(r.Context(), fb); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"message": "Feedback received, thank you!"})
	}
}
