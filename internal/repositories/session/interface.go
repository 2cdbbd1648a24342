package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dmateos/amigo/internal/repositories/session Repository

import (
	"context"

	"github.com/dmateos/amigo/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session record
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// UpdateSession applies the Update function to the stored session as a
	// single atomic read-modify-write and returns the updated record.
	// Concurrent updates to the same session must not lose each other's
	// changes. An error returned by Update aborts without writing.
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error)

	// IsConfigured reports whether the backend is shared external storage.
	// The in-process backend answers false; it only serves single-instance
	// deployments.
	IsConfigured() bool
}
