package server

import "net/http"

type ChallengeAnswerRequest struct {
	OptionID int `json:"optionId"`
}

func handleStartChallenge(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		if _, err := sess.StartChallenge(); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}

func handleChallengeAnswer(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		var req ChallengeAnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := sess.ChallengeSelect(req.OptionID); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}
