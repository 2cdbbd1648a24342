package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmateos/amigo/internal/models"
)

// memoryRepository implements the Repository interface with a process-local
// map. Sessions are lost on restart and not shared across instances; it is
// the fallback when no Redis address is configured.
type memoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// SaveSession stores a clone of the session
func (r *memoryRepository) SaveSession(_ context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = input.Session.Clone()
	return nil
}

// GetSession returns a clone of the stored session
func (r *memoryRepository) GetSession(_ context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session.Clone(), nil
}

// UpdateSession holds the store lock across the whole read-modify-write, so
// concurrent updates to the same session serialize instead of overwriting
// each other.
func (r *memoryRepository) UpdateSession(_ context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	working := stored.Clone()
	if err := input.Update(working); err != nil {
		return nil, err
	}

	r.sessions[input.SessionID] = working
	return working.Clone(), nil
}

// IsConfigured reports that this backend is not shared storage
func (r *memoryRepository) IsConfigured() bool {
	return false
}
