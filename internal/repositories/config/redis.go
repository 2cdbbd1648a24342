package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmateos/amigo/internal/models"
	"github.com/redis/go-redis/v9"
)

// Key prefix for Redis
const configKeyPrefix = "config:"

// ErrConfigNotFound is returned when a configuration is not found
var ErrConfigNotFound = errors.New("config not found")

// Config holds configuration for the Redis config repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed config repository
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

// SaveConfig persists a configuration to Redis
func (r *redisRepository) SaveConfig(ctx context.Context, input *SaveConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	configJSON, err := json.Marshal(input.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configKey := fmt.Sprintf("%s%s", configKeyPrefix, input.Config.ID)
	if err := r.client.Set(ctx, configKey, configJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// GetConfig retrieves a configuration by ID from Redis
func (r *redisRepository) GetConfig(ctx context.Context, input *GetConfigInput) (*models.Config, error) {
	if input == nil || input.ConfigID == "" {
		return nil, errors.New("input and config ID cannot be empty")
	}

	configKey := fmt.Sprintf("%s%s", configKeyPrefix, input.ConfigID)
	configJSON, err := r.client.Get(ctx, configKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	var cfg models.Config
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// IsConfigured reports that this backend is shared external storage
func (r *redisRepository) IsConfigured() bool {
	return true
}
