package server

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/gramquest/villagegame/internal/game"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) CreateUser(ctx context.Context, username, passwordHash string, age int, gender string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, age, gender)
		VALUES (?, ?, ?, ?)
		RETURNING id, username, age, gender
	`, username, passwordHash, age, gender).Scan(&u.ID, &u.Username, &u.Age, &u.Gender)
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return User{}, ErrDuplicate
	}
	return u, err
}

func (s *SQLiteStore) UserByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, age, gender, password_hash
		FROM users WHERE username = ?
	`, username).Scan(&u.ID, &u.Username, &u.Age, &u.Gender, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *SQLiteStore) UserFromToken(ctx context.Context, token string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.username, u.age, u.gender
		FROM auth_sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = ?
	`, token).Scan(&u.ID, &u.Username, &u.Age, &u.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, errNoSession
	}
	return u, err
}

func (s *SQLiteStore) CreateAuthSession(ctx context.Context, userID int64) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO auth_sessions (user_id, token)
		VALUES (?, lower(hex(randomblob(16))))
		RETURNING token
	`, userID).Scan(&token)
	return token, err
}

func (s *SQLiteStore) ListStates(ctx context.Context) ([]State, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM states ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []State
	for rows.Next() {
		var st State
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListVillagesByState(ctx context.Context, stateID int64) ([]Village, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, state_id, name, population, water_bodies, green_cover, development, description
		FROM villages WHERE state_id = ? ORDER BY name
	`, stateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Village
	for rows.Next() {
		var v Village
		if err := rows.Scan(&v.ID, &v.StateID, &v.Name, &v.Population, &v.WaterBodies, &v.GreenCover, &v.Development, &v.Description); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) VillageByID(ctx context.Context, id int64) (Village, error) {
	var v Village
	err := s.db.QueryRowContext(ctx, `
		SELECT id, state_id, name, population, water_bodies, green_cover, development, description
		FROM villages WHERE id = ?
	`, id).Scan(&v.ID, &v.StateID, &v.Name, &v.Population, &v.WaterBodies, &v.GreenCover, &v.Development, &v.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return Village{}, ErrNotFound
	}
	return v, err
}

func (s *SQLiteStore) ListSectors(ctx context.Context) ([]game.Sector, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, budget, color, icon FROM sectors ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []game.Sector
	for rows.Next() {
		var sec game.Sector
		if err := rows.Scan(&sec.ID, &sec.Name, &sec.Description, &sec.Budget, &sec.Color, &sec.Icon); err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SectorByID(ctx context.Context, id int64) (game.Sector, error) {
	var sec game.Sector
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, budget, color, icon FROM sectors WHERE id = ?
	`, id).Scan(&sec.ID, &sec.Name, &sec.Description, &sec.Budget, &sec.Color, &sec.Icon)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Sector{}, ErrNotFound
	}
	return sec, err
}

func (s *SQLiteStore) CreateScore(ctx context.Context, rec ScoreRecord) (ScoreRecord, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO scores (user_id, village_id, development_score, budget_efficiency, environmental_impact, created_at)
		VALUES (?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		RETURNING id, created_at
	`, rec.UserID, rec.VillageID, rec.DevelopmentScore, rec.BudgetEfficiency, string(rec.EnvironmentalImpact)).
		Scan(&rec.ID, &rec.CreatedAt)
	return rec, err
}

// ListScores returns the leaderboard sorted descending by development
// score, joined with usernames and village names.
func (s *SQLiteStore) ListScores(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sc.id, sc.user_id, sc.village_id, sc.development_score,
		       sc.budget_efficiency, sc.environmental_impact, sc.created_at,
		       u.username, v.name
		FROM scores sc
		JOIN users u ON u.id = sc.user_id
		JOIN villages v ON v.id = sc.village_id
		ORDER BY sc.development_score DESC, sc.created_at ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var impact string
		if err := rows.Scan(&e.ID, &e.UserID, &e.VillageID, &e.DevelopmentScore,
			&e.BudgetEfficiency, &impact, &e.CreatedAt, &e.Username, &e.VillageName); err != nil {
			return nil, err
		}
		e.EnvironmentalImpact = game.EnvImpact(impact)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListUserScores(ctx context.Context, userID int64) ([]ScoreRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, village_id, development_score, budget_efficiency, environmental_impact, created_at
		FROM scores WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var impact string
		if err := rows.Scan(&r.ID, &r.UserID, &r.VillageID, &r.DevelopmentScore, &r.BudgetEfficiency, &impact, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.EnvironmentalImpact = game.EnvImpact(impact)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateFeedback(ctx context.Context, fb Feedback) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (user_id, rating, message, created_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	`, fb.UserID, fb.Rating, fb.Message)
	return err
}

func (s *SQLiteStore) CountSectors(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sectors`).Scan(&n)
	return n, err
}
