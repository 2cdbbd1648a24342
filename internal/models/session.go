package models

import (
	"time"
)

// House is a group of people who must not be matched with each other in a draw.
type House struct {
	// ID is the unique identifier for the house
	ID string `json:"id"`

	// Name is the display name of the house
	Name string `json:"name"`
}

// Person is a participant in a gift exchange session.
type Person struct {
	// ID is the unique identifier for the person
	ID string `json:"id"`

	// Name is the display name of the person
	Name string `json:"name"`

	// HouseID references the house this person belongs to
	HouseID string `json:"houseId"`

	// Claimed records whether the person has identified themselves in the
	// session. It flips from false to true exactly once and never reverts.
	Claimed bool `json:"claimed"`
}

// Assignment pairs a giver with the receiver they give a gift to.
type Assignment struct {
	// GiverID is the person giving the gift
	GiverID string `json:"giverId"`

	// ReceiverID is the person receiving the gift
	ReceiverID string `json:"receiverId"`
}

// Session is one gift exchange draw. It owns its houses, people and
// assignments outright; records are never shared across sessions.
type Session struct {
	// ID is the unique identifier for the session. It doubles as a bearer
	// secret, so it must be unguessable.
	ID string `json:"id"`

	// Houses are the households taking part in the draw
	Houses []*House `json:"houses"`

	// People are the participants of the draw
	People []*Person `json:"people"`

	// Assignments is the full giver/receiver mapping. Empty until the draw
	// completes; never exposed through the public session view.
	Assignments []*Assignment `json:"assignments"`

	// IsDrawComplete is true once Assignments holds a valid mapping for
	// every participant
	IsDrawComplete bool `json:"isDrawComplete"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`
}

// FindPerson returns the person with the given ID, or nil.
func (s *Session) FindPerson(personID string) *Person {
	for _, p := range s.People {
		if p.ID == personID {
			return p
		}
	}
	return nil
}

// AllClaimed reports whether every person in the session has claimed.
func (s *Session) AllClaimed() bool {
	for _, p := range s.People {
		if !p.Claimed {
			return false
		}
	}
	return true
}

// ReceiverIDFor returns the receiver assigned to the given giver, or the
// empty string when no assignment exists for them.
func (s *Session) ReceiverIDFor(giverID string) string {
	for _, a := range s.Assignments {
		if a.GiverID == giverID {
			return a.ReceiverID
		}
	}
	return ""
}

// Clone returns a deep copy of the session. Stores hand out clones so that
// no caller can mutate persisted state without going through a write.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	out := &Session{
		ID:             s.ID,
		Houses:         make([]*House, len(s.Houses)),
		People:         make([]*Person, len(s.People)),
		Assignments:    make([]*Assignment, len(s.Assignments)),
		IsDrawComplete: s.IsDrawComplete,
		CreatedAt:      s.CreatedAt,
	}

	for i, h := range s.Houses {
		houseCopy := *h
		out.Houses[i] = &houseCopy
	}

	for i, p := range s.People {
		personCopy := *p
		out.People[i] = &personCopy
	}

	for i, a := range s.Assignments {
		assignmentCopy := *a
		out.Assignments[i] = &assignmentCopy
	}

	return out
}
