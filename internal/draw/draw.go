package draw

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/dmateos/amigo/internal/models"
)

// ErrInfeasible is returned when no valid assignment was found within the
// attempt budget. It is a normal outcome, not a fault: single-household
// inputs can never be matched, and pathological household splits may exhaust
// the budget even when a valid assignment exists.
var ErrInfeasible = errors.New("no valid assignment found")

const defaultMaxAttempts = 100

// Engine computes giver/receiver assignments for a set of people such that
// nobody gives to themselves or to someone in their own house.
type Engine struct {
	// rand.Rand is not safe for concurrent use
	mu     sync.Mutex
	random *rand.Rand

	maxAttempts int
}

// Config for the draw engine
type Config struct {
	// Optional seed for testing
	Seed int64

	// MaxAttempts bounds the number of randomized search attempts
	MaxAttempts int
}

// New creates a new draw engine
func New(cfg *Config) *Engine {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	maxAttempts := defaultMaxAttempts
	if cfg != nil && cfg.MaxAttempts > 0 {
		maxAttempts = cfg.MaxAttempts
	}

	source := rand.NewSource(seed)

	return &Engine{
		random:      rand.New(source),
		maxAttempts: maxAttempts,
	}
}

// Generate returns a full giver/receiver mapping for the given people, or
// ErrInfeasible. Each attempt draws a fresh random giver order and tries
// candidates per giver in a fresh random order, backtracking on dead-ends;
// randomizing both orders lets later attempts escape dead-ends earlier ones
// hit, and spreads different pairings across repeated draws of the same
// input. The search is bounded, not exact: it never returns an invalid
// assignment, but it can miss one that exists.
func (e *Engine) Generate(people []*models.Person) ([]*models.Assignment, error) {
	if len(people) < 2 {
		return nil, ErrInfeasible
	}

	// A single house makes every pairing self-or-same-house.
	houses := make(map[string]struct{}, len(people))
	for _, p := range people {
		houses[p.HouseID] = struct{}{}
	}
	if len(houses) < 2 {
		return nil, ErrInfeasible
	}

	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		givers := e.shuffled(people)
		consumed := make(map[string]struct{}, len(people))
		partial := make([]*models.Assignment, 0, len(people))

		if result := e.extend(givers, people, consumed, partial); result != nil {
			return result, nil
		}
	}

	return nil, ErrInfeasible
}

// extend assigns a receiver to the next unsatisfied giver and recurses. It
// returns the completed assignment list, or nil when every candidate for
// this giver dead-ends; the consumed receiver is released before moving to
// the next candidate.
func (e *Engine) extend(givers, people []*models.Person, consumed map[string]struct{}, partial []*models.Assignment) []*models.Assignment {
	if len(partial) == len(givers) {
		return partial
	}

	giver := givers[len(partial)]

	for _, candidate := range e.shuffled(people) {
		if candidate.ID == giver.ID || candidate.HouseID == giver.HouseID {
			continue
		}
		if _, taken := consumed[candidate.ID]; taken {
			continue
		}

		consumed[candidate.ID] = struct{}{}
		next := append(partial, &models.Assignment{
			GiverID:    giver.ID,
			ReceiverID: candidate.ID,
		})

		if result := e.extend(givers, people, consumed, next); result != nil {
			return result
		}

		delete(consumed, candidate.ID)
	}

	return nil
}

// shuffled returns a new randomly ordered copy of people.
func (e *Engine) shuffled(people []*models.Person) []*models.Person {
	out := make([]*models.Person, len(people))
	copy(out, people)

	e.mu.Lock()
	e.random.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	e.mu.Unlock()

	return out
}
