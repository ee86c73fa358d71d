package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/healthtrack-backend/pkg/config"
	redisclient "github.com/angelmondragon/healthtrack-backend/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(userID uint) string
}

// Cache mirrors each user's current session token in Redis so verification
// can skip the database. The users table stays authoritative: a miss is not
// a rejection.
type Cache struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
}

// NewCache constructs a session cache backed by Redis. Entries live as long
// as the tokens they mirror.
func NewCache(client *redisclient.Client, cfg config.JWTConfig) (*Cache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.TTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Cache{store: client, keyer: client, ttl: ttl}, nil
}

// Remember records token as the user's current session, replacing any
// previous entry.
func (c *Cache) Remember(ctx context.Context, userID uint, token string) error {
	if userID == 0 || strings.TrimSpace(token) == "" {
		return fmt.Errorf("user id and token are required")
	}
	return c.store.Set(ctx, c.keyer.SessionKey(userID), token, c.ttl)
}

// Matches reports whether token is the cached session for userID. A missing
// entry returns false without error.
func (c *Cache) Matches(ctx context.Context, userID uint, token string) (bool, error) {
	if userID == 0 || token == "" {
		return false, nil
	}
	stored, err := c.store.Get(ctx, c.keyer.SessionKey(userID))
	if err != nil {
		if errors.Is(err, redisclient.ErrNil) {
			return false, nil
		}
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1, nil
}

// Forget drops the cached session for userID.
func (c *Cache) Forget(ctx context.Context, userID uint) error {
	return c.store.Del(ctx, c.keyer.SessionKey(userID))
}
