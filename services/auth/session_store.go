package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"salonapp/models"
)

const authSessionPrefix = "authSession:"

// SessionStore persists a signed-in visitor's session across restarts. The
// booking core never touches storage directly; it only goes through this
// interface.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*models.AuthSession, error)
	Save(ctx context.Context, sessionID string, session models.AuthSession) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps auth sessions as JSON values in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// Load returns the saved session, or nil when none exists. A record that no
// longer parses is treated the same as a missing one.
func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.AuthSession, error) {
	data, err := s.Client.Get(ctx, authSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load auth session: %w", err)
	}
	var session models.AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, nil
	}
	return &session, nil
}

// Save stores the session under the given id, stamping the save time.
func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session models.AuthSession) error {
	session.SavedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	if err := s.Client.Set(ctx, authSessionPrefix+sessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// Clear removes the persisted session.
func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, authSessionPrefix+sessionID).Err()
}
