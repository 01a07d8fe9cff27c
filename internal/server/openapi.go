package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/gramquest/villagegame/internal/game"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "VillageGame API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the village development planning game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/register
	postRegister, _ := r.NewOperationContext(http.MethodPost, "/api/register")
	postRegister.SetSummary("Register")
	postRegister.SetDescription("Create a player account. Returns a Bearer token.")
	postRegister.AddReqStructure(RegisterRequest{})
	postRegister.AddRespStructure(AuthResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postRegister.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postRegister.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postRegister)

	// POST /api/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/login")
	postLogin.SetSummary("Login")
	postLogin.SetDescription("Authenticate with username and password. Returns a Bearer token.")
	postLogin.AddReqStructure(LoginRequest{})
	postLogin.AddRespStructure(AuthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// GET /api/user
	getUser, _ := r.NewOperationContext(http.MethodGet, "/api/user")
	getUser.SetSummary("Current user")
	getUser.SetDescription("Returns the authenticated user. Requires Bearer token.")
	getUser.AddRespStructure(User{}, openapi.WithHTTPStatus(http.StatusOK))
	getUser.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getUser)

	// GET /api/states
	getStates, _ := r.NewOperationContext(http.MethodGet, "/api/states")
	getStates.SetSummary("List states")
	getStates.AddRespStructure([]State{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStates)

	// GET /api/states/{id}/villages
	getVillages, _ := r.NewOperationContext(http.MethodGet, "/api/states/{id}/villages")
	getVillages.SetSummary("List villages in a state")
	getVillages.AddRespStructure([]Village{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getVillages)

	// GET /api/villages/{id}
	getVillage, _ := r.NewOperationContext(http.MethodGet, "/api/villages/{id}")
	getVillage.SetSummary("Get village")
	getVillage.AddRespStructure(Village{}, openapi.WithHTTPStatus(http.StatusOK))
	getVillage.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getVillage)

	// GET /api/sectors
	getSectors, _ := r.NewOperationContext(http.MethodGet, "/api/sectors")
	getSectors.SetSummary("List development sectors")
	getSectors.AddRespStructure([]game.Sector{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getSectors)

	// POST /api/game/sessions
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/game/sessions")
	postSession.SetSummary("Start a sector session")
	postSession.SetDescription("Begins developing one sector of a village. Requires Bearer token.")
	postSession.AddReqStructure(CreateSessionRequest{})
	postSession.AddRespStructure(game.Snapshot{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postSession)

	// GET /api/game/sessions/{sessionID}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/game/sessions/{sessionID}")
	getSession.SetSummary("Get session state")
	getSession.AddRespStructure(game.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// POST /api/game/sessions/{sessionID}/finish
	postFinish, _ := r.NewOperationContext(http.MethodPost, "/api/game/sessions/{sessionID}/finish")
	postFinish.SetSummary("Finish session")
	postFinish.SetDescription("Settles the session and persists its score record.")
	postFinish.AddRespStructure(FinishSessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postFinish.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postFinish.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(postFinish)

	// DELETE /api/game/sessions/{sessionID}
	deleteSession, _ := r.NewOperationContext(http.MethodDelete, "/api/game/sessions/{sessionID}")
	deleteSession.SetSummary("Abandon session")
	deleteSession.SetDescription("Discards the session without recording a score.")
	deleteSession.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(deleteSession)

	// Mini-game actions all return the refreshed session snapshot.
	for _, path := range []string{
		"/api/game/sessions/{sessionID}/allocation/start",
		"/api/game/sessions/{sessionID}/allocation/prioritize",
		"/api/game/sessions/{sessionID}/allocation/reorder",
		"/api/game/sessions/{sessionID}/allocation/finish",
		"/api/game/sessions/{sessionID}/challenge/start",
		"/api/game/sessions/{sessionID}/challenge/answer",
		"/api/game/sessions/{sessionID}/quiz/start",
		"/api/game/sessions/{sessionID}/quiz/answer",
	} {
		op, _ := r.NewOperationContext(http.MethodPost, path)
		op.SetSummary("Mini-game action")
		op.AddRespStructure(game.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
		op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
		op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
		op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
		_ = r.AddOperation(op)
	}

	// GET /api/game/sessions/{sessionID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/sessions/{sessionID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of session progress. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/scores
	getScores, _ := r.NewOperationContext(http.MethodGet, "/api/scores")
	getScores.SetSummary("Leaderboard")
	getScores.SetDescription("Score records ordered by development score, highest first.")
	getScores.AddRespStructure([]LeaderboardEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getScores)

	// GET /api/scores/me
	getMyScores, _ := r.NewOperationContext(http.MethodGet, "/api/scores/me")
	getMyScores.SetSummary("My scores")
	getMyScores.AddRespStructure([]ScoreRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	getMyScores.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMyScores)

	// POST /api/feedback
	postFeedback, _ := r.NewOperationContext(http.MethodPost, "/api/feedback")
	postFeedback.SetSummary("Submit feedback")
	postFeedback.AddReqStructure(FeedbackRequest{})
	postFeedback.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusCreated))
	postFeedback.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postFeedback)

	// POST /api/chat
	postChat, _ := r.NewOperationContext(http.MethodPost, "/api/chat")
	postChat.SetSummary("Village advisor chat")
	postChat.AddReqStructure(ChatRequest{})
	postChat.AddRespStructure(ChatResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postChat)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(spec)
	}
}
