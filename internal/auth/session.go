package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the browser cookie carrying the session token.
const CookieName = "hotel_session"

const sessionKeyFmt = "session:%s"

// NewSessionID mints an id for one browser session.
func NewSessionID() string {
	return uuid.NewString()
}

func SetSession(rdb *redis.Client, sessionId, token string, duration time.Duration) error {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, sessionId)
	return rdb.Set(ctx, key, token, duration).Err()
}

func GetSession(rdb *redis.Client, sessionId string) (string, error) {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, sessionId)
	return rdb.Get(ctx, key).Result()
}

// DeleteSession removes the server-side session entry. The token in the
// cookie is worthless afterwards even before the cookie expires.
func DeleteSession(rdb *redis.Client, sessionId string) error {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, sessionId)
	return rdb.Del(ctx, key).Err()
}
