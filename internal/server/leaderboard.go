package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey = "leaderboard:scores"
	leaderboardTTL = 30 * time.Second

	// leaderboardSize is how many entries are ranked. Reads and the
	// cache always cover the full size; per-request limits slice it.
	leaderboardSize = 50
)

// Leaderboard serves ranked score listings. When a redis client is
// configured the ranked listing is cached in a sorted set; with a nil
// client every read goes straight to SQLite.
type Leaderboard struct {
	store  Store
	rdb    *redis.Client
	logger *slog.Logger
}

func NewLeaderboard(store Store, rdb *redis.Client, logger *slog.Logger) *Leaderboard {
	return &Leaderboard{store: store, rdb: rdb, logger: logger}
}

// Top returns up to limit entries ordered by development score,
// highest first. The store (and the cache) are always consulted for
// the full ranking so a small request cannot shrink what later, larger
// requests see.
func (l *Leaderboard) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit > leaderboardSize {
		limit = leaderboardSize
	}

	if l.rdb != nil {
		if entries, ok := l.fromCache(ctx); ok {
			return truncate(entries, limit), nil
		}
	}

	entries, err := l.store.ListScores(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}

	if l.rdb != nil {
		l.fillCache(ctx, entries)
	}
	return truncate(entries, limit), nil
}

func truncate(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

// Invalidate drops the cached ranking. Called after a new score lands.
func (l *Leaderboard) Invalidate(ctx context.Context) {
	if l.rdb == nil {
		return
	}
	if err := l.rdb.Del(ctx, leaderboardKey).Err(); err != nil {
		l.logger.Warn("leaderboard cache invalidate failed", "error", err)
	}
}

func (l *Leaderboard) fromCache(ctx context.Context) ([]LeaderboardEntry, bool) {
	raw, err := l.rdb.ZRevRange(ctx, leaderboardKey, 0, leaderboardSize-1).Result()
	if err != nil || len(raw) == 0 {
		if err != nil && err != redis.Nil {
			l.logger.Warn("leaderboard cache read failed", "error", err)
		}
		return nil, false
	}
	entries := make([]LeaderboardEntry, 0, len(raw))
	for _, item := range raw {
		var e LeaderboardEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, false
		}
		entries = append(entries, e)
	}
	return entries, true
}

func (l *Leaderboard) fillCache(ctx context.Context, entries []LeaderboardEntry) {
	if len(entries) == 0 {
		return
	}
	members := make([]redis.Z, 0, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return
		}
		members = append(members, redis.Z{
			Score:  float64(e.DevelopmentScore),
			Member: string(data),
		})
	}
	pipe := l.rdb.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	pipe.ZAdd(ctx, leaderboardKey, members...)
	pipe.Expire(ctx, leaderboardKey, leaderboardTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn("leaderboard cache fill failed", "error", err)
	}
}
