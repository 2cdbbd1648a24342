package config

import (
	"context"
	"errors"
	"sync"

	"github.com/dmateos/amigo/internal/models"
)

// memoryRepository implements the Repository interface with a process-local
// map, for single-instance deployments without Redis.
type memoryRepository struct {
	mu      sync.Mutex
	configs map[string]*models.Config
}

// NewMemory creates a new in-memory config repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		configs: make(map[string]*models.Config),
	}
}

// SaveConfig stores a clone of the configuration
func (r *memoryRepository) SaveConfig(_ context.Context, input *SaveConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.configs[input.Config.ID] = input.Config.Clone()
	return nil
}

// GetConfig returns a clone of the stored configuration
func (r *memoryRepository) GetConfig(_ context.Context, input *GetConfigInput) (*models.Config, error) {
	if input == nil || input.ConfigID == "" {
		return nil, errors.New("input and config ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, ok := r.configs[input.ConfigID]
	if !ok {
		return nil, ErrConfigNotFound
	}

	return cfg.Clone(), nil
}

// IsConfigured reports that this backend is not shared storage
func (r *memoryRepository) IsConfigured() bool {
	return false
}
