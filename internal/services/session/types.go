package session

import "github.com/dmateos/amigo/internal/models"

type CreateSessionInput struct {
	// Houses are the households taking part in the draw
	Houses []*models.House

	// People are the participants; Claimed is ignored and starts false.
	// Blank IDs are filled in server-side.
	People []*models.Person
}

type CreateSessionOutput struct {
	// SessionID is the opaque handle participants share
	SessionID string

	// IsDrawComplete is false when no valid assignment was found for the
	// given household distribution
	IsDrawComplete bool
}

type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput is the public view of a session. It deliberately has no
// assignments field.
type GetSessionOutput struct {
	SessionID      string
	Houses         []*models.House
	People         []*models.Person
	IsDrawComplete bool
}

type ClaimPersonInput struct {
	SessionID string
	PersonID  string
}

type ClaimPersonOutput struct {
	// IsDrawComplete reports whether assignments are ready to reveal
	IsDrawComplete bool
}

type GetReceiverInput struct {
	SessionID string
	PersonID  string
}

// Receiver is the public identity of an assigned receiver, and all a giver
// ever learns about them.
type Receiver struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	HouseID string `json:"houseId"`
}

type GetReceiverOutput struct {
	Receiver *Receiver
}

type CreateConfigInput struct {
	// Name is an optional label for the saved setup
	Name string

	Houses []*models.House
	People []*models.ConfigPerson
}

type CreateConfigOutput struct {
	ConfigID string
}

type GetConfigInput struct {
	ConfigID string
}

type GetConfigOutput struct {
	Config *models.Config
}
