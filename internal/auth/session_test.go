package auth

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"go-hotel/internal/config"
	redisdb "go-hotel/internal/redis"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	return redisdb.NewClient(cfg)
}

func TestSessionSetGetDelete(t *testing.T) {
	rdb := testRedis(t)

	sessionId := NewSessionID()
	token := "session_test_token"
	duration := 2 * time.Second

	if err := SetSession(rdb, sessionId, token, duration); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}

	gotToken, err := GetSession(rdb, sessionId)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if gotToken != token {
		t.Errorf("expected token %q, got %q", token, gotToken)
	}

	if err := DeleteSession(rdb, sessionId); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	if _, err = GetSession(rdb, sessionId); err == nil {
		t.Errorf("expected error for deleted session, got nil")
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Errorf("session ids should be unique")
	}
}
