package server

import "net/http"

type QuizAnswerRequest struct {
	OptionID string `json:"optionId"`
}

func handleStartQuiz(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		if _, err := sess.StartQuiz(); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}

func handleQuizAnswer(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromRequest(r, sessions)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		var req QuizAnswerRequest
		if err := readJSON(r, &req); err != nil || req.OptionID == "" {
			writeError(w, http.StatusBadRequest, "optionId is required")
			return
		}

		if err := sess.QuizSelect(req.OptionID); err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.State())
	}
}
