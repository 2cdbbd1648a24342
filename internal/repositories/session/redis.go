package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmateos/amigo/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	sessionKeyPrefix = "session:"

	// maxUpdateAttempts bounds optimistic-concurrency retries when another
	// writer touches the session between our read and our write
	maxUpdateAttempts = 5
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrTooManyConflicts is returned when an update keeps losing the
// compare-and-swap race against other writers
var ErrTooManyConflicts = errors.New("session update conflicted too many times")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository. The connection is
// not probed here; Redis may come up after the process does, and every call
// surfaces its own error instead of crashing.
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	if err := r.client.Set(ctx, sessionKey, sessionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// UpdateSession applies Update under WATCH so that two concurrent writers
// cannot overwrite each other's changes. When EXEC reports the key moved
// underneath us, the whole read-modify-write is retried with fresh state.
func (r *redisRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var updated *models.Session

		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			sessionJSON, err := tx.Get(ctx, sessionKey).Result()
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to get session: %w", err)
			}

			var session models.Session
			if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
				return fmt.Errorf("failed to unmarshal session: %w", err)
			}

			if err := input.Update(&session); err != nil {
				return err
			}

			data, err := json.Marshal(&session)
			if err != nil {
				return fmt.Errorf("failed to marshal session: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, sessionKey, data, 0)
				return nil
			})
			if err != nil {
				return err
			}

			updated = &session
			return nil
		}, sessionKey)

		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race; retry against the new state.
			continue
		}
		if err != nil {
			return nil, err
		}

		return updated, nil
	}

	return nil, ErrTooManyConflicts
}

// IsConfigured reports that this backend is shared external storage
func (r *redisRepository) IsConfigured() bool {
	return true
}
