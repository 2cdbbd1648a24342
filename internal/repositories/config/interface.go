package config

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dmateos/amigo/internal/repositories/config Repository

import (
	"context"

	"github.com/dmateos/amigo/internal/models"
)

// Repository defines the interface for saved-configuration persistence.
// Configurations are immutable blobs, so there is no update path.
type Repository interface {
	// SaveConfig persists a configuration record
	SaveConfig(ctx context.Context, input *SaveConfigInput) error

	// GetConfig retrieves a configuration by ID
	GetConfig(ctx context.Context, input *GetConfigInput) (*models.Config, error)

	// IsConfigured reports whether the backend is shared external storage
	IsConfigured() bool
}
