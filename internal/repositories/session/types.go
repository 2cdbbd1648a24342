package session

import "github.com/dmateos/amigo/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type UpdateSessionInput struct {
	SessionID string

	// Update mutates the session in place. Returning an error abandons the
	// write and surfaces the error to the caller unchanged.
	Update func(session *models.Session) error
}
