package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dmateos/amigo/internal/services/session Service

import "context"

// Service defines the operations exposed to the HTTP boundary
type Service interface {
	// CreateSession validates the roster, runs the draw eagerly and
	// persists the full session record
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns the public view of a session, without assignments
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ClaimPerson marks a participant as having identified themselves.
	// Claiming is one-way and idempotent from the caller's perspective.
	ClaimPerson(ctx context.Context, input *ClaimPersonInput) (*ClaimPersonOutput, error)

	// GetReceiver reveals the receiver assigned to a claimed participant
	GetReceiver(ctx context.Context, input *GetReceiverInput) (*GetReceiverOutput, error)

	// CreateConfig saves a reusable draw setup
	CreateConfig(ctx context.Context, input *CreateConfigInput) (*CreateConfigOutput, error)

	// GetConfig retrieves a saved draw setup
	GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error)

	// StorageEnabled reports whether sessions live in shared external
	// storage rather than the in-process fallback
	StorageEnabled() bool
}
