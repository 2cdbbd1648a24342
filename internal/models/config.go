package models

import (
	"time"
)

// ConfigPerson is a participant entry inside a saved configuration. Claim
// state is session-scoped, so it is not stored here.
type ConfigPerson struct {
	// ID is the unique identifier for the person
	ID string `json:"id"`

	// Name is the display name of the person
	Name string `json:"name"`

	// HouseID references a house in the same configuration
	HouseID string `json:"houseId"`
}

// Config is a reusable draw setup saved by an organizer, a plain
// save/restore record with no invariants beyond existence.
type Config struct {
	// ID is the unique identifier for the configuration
	ID string `json:"id"`

	// Name is an optional label given by the organizer
	Name string `json:"name,omitempty"`

	// Houses are the saved households
	Houses []*House `json:"houses"`

	// People are the saved participants
	People []*ConfigPerson `json:"people"`

	// CreatedAt is when the configuration was saved
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := &Config{
		ID:        c.ID,
		Name:      c.Name,
		Houses:    make([]*House, len(c.Houses)),
		People:    make([]*ConfigPerson, len(c.People)),
		CreatedAt: c.CreatedAt,
	}

	for i, h := range c.Houses {
		houseCopy := *h
		out.Houses[i] = &houseCopy
	}

	for i, p := range c.People {
		personCopy := *p
		out.People[i] = &personCopy
	}

	return out
}
