package server

import (
	"context"
	"errors"

	"github.com/gramquest/villagegame/internal/game"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// User is a registered player. PasswordHash never leaves the store
// except through UserByUsername for login verification.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Age          int    `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	PasswordHash string `json:"-"`
}

// State is a top-level region villages belong to.
type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Village is the unit players develop.
type Village struct {
	ID          int64  `json:"id"`
	StateID     int64  `json:"stateId"`
	Name        string `json:"name"`
	Population  int    `json:"population"`
	WaterBodies int    `json:"waterBodies"`
	GreenCover  int    `json:"greenCover"`
	Development int    `json:"development"`
	Description string `json:"description"`
}

// ScoreRecord is the persisted outcome of one completed sector session.
// Records are insert-only; one is written per finished session.
type ScoreRecord struct {
	ID                  int64          `json:"id"`
	UserID              int64          `json:"userId"`
	VillageID           int64          `json:"villageId"`
	DevelopmentScore    int            `json:"developmentScore"`
	BudgetEfficiency    int            `json:"budgetEfficiency"`
	EnvironmentalImpact game.EnvImpact `json:"environmentalImpact"`
	CreatedAt           string         `json:"createdAt"`
}

// LeaderboardEntry is a score record joined with user and village names.
type LeaderboardEntry struct {
	ScoreRecord
	Username    string `json:"username"`
	VillageName string `json:"villageName"`
}

// Feedback is a free-form player comment, validated at the boundary.
type Feedback struct {
	UserID  *int64 `json:"userId,omitempty"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string, age int, gender string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserFromToken(ctx context.Context, token string) (User, error)
	CreateAuthSession(ctx context.Context, userID int64) (token string, err error)

	ListStates(ctx context.Context) ([]State, error)
	ListVillagesByState(ctx context.Context, stateID int64) ([]Village, error)
	VillageByID(ctx context.Context, id int64) (Village, error)

	ListSectors(ctx context.Context) ([]game.Sector, error)
	SectorByID(ctx context.Context, id int64) (game.Sector, error)

	CreateScore(ctx context.Context, rec ScoreRecord) (ScoreRecord, error)
	ListScores(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	ListUserScores(ctx context.Context, userID int64) ([]ScoreRecord, error)

	CreateFeedback(ctx context.Context, fb Feedback) error

	CountSectors(ctx context.Context) (int, error)
}
