package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gramquest/villagegame/internal/database"
)

func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         "localhost:1",
		DialTimeout:  10 * time.Millisecond,
		ReadTimeout:  10 * time.Millisecond,
		WriteTimeout: 10 * time.Millisecond,
		MaxRetries:   0,
	})
}

func TestHealth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	tests := []struct {
		name       string
		rdb        *redis.Client
		wantStatus int
		wantRedis  bool
	}{
		{
			name:       "sqlite only",
			rdb:        nil,
			wantStatus: http.StatusOK,
			wantRedis:  false,
		},
		{
			name:       "redis down",
			rdb:        deadRedis(),
			wantStatus: http.StatusServiceUnavailable,
			wantRedis:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handleHealth(logger, db, tt.rdb)

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			h(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			var body map[string]struct {
				Status string `json:"status"`
			}
			json.NewDecoder(w.Body).Decode(&body)

			if got := body["sqlite"].Status; got != "ok" {
				t.Errorf("sqlite = %q, want ok", got)
			}
			_, hasRedis := body["redis"]
			if hasRedis != tt.wantRedis {
				t.Errorf("redis check present = %v, want %v", hasRedis, tt.wantRedis)
			}
		})
	}
}
