package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmateos/amigo/internal/common/clock"
	"github.com/dmateos/amigo/internal/common/token"
	commonUUID "github.com/dmateos/amigo/internal/common/uuid"
	"github.com/dmateos/amigo/internal/draw"
	"github.com/dmateos/amigo/internal/models"
	configRepo "github.com/dmateos/amigo/internal/repositories/config"
	sessionRepo "github.com/dmateos/amigo/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	configRepo  configRepo.Repository
	engine      *draw.Engine
	clock       clock.Clock
	uuider      commonUUID.UUID
	tokens      token.Generator
}

// Config holds the dependencies for the session service
type Config struct {
	// SessionRepo persists session records
	SessionRepo sessionRepo.Repository

	// ConfigRepo persists saved draw setups
	ConfigRepo configRepo.Repository

	// Engine computes giver/receiver assignments
	Engine *draw.Engine

	// Clock defaults to the system clock
	Clock clock.Clock

	// UUID defaults to random UUIDs; used to mint house/person ids
	UUID commonUUID.UUID

	// Tokens defaults to crypto/rand tokens; used to mint session and
	// config ids
	Tokens token.Generator
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.ConfigRepo == nil {
		return nil, ErrNilConfigRepo
	}

	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	if cfg.UUID == nil {
		cfg.UUID = commonUUID.New()
	}

	if cfg.Tokens == nil {
		cfg.Tokens = token.New()
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		configRepo:  cfg.ConfigRepo,
		engine:      cfg.Engine,
		clock:       cfg.Clock,
		uuider:      cfg.UUID,
		tokens:      cfg.Tokens,
	}, nil
}

// CreateSession validates the roster, computes assignments eagerly and
// persists the full record. An infeasible draw is not an error here: the
// session is stored with IsDrawComplete false and the caller decides how to
// surface it.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	houses, people, err := s.normalizeRoster(input.Houses, input.People)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:          s.tokens.NewToken(),
		Houses:      houses,
		People:      people,
		Assignments: []*models.Assignment{},
		CreatedAt:   s.clock.Now(),
	}

	assignments, err := s.engine.Generate(people)
	if err == nil {
		session.Assignments = assignments
		session.IsDrawComplete = true
	} else if !errors.Is(err, draw.ErrInfeasible) {
		return nil, err
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		SessionID:      session.ID,
		IsDrawComplete: session.IsDrawComplete,
	}, nil
}

// GetSession returns the public view of a session. Assignments never leave
// the service through this path.
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrInvalidInput)
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &GetSessionOutput{
		SessionID:      session.ID,
		Houses:         session.Houses,
		People:         session.People,
		IsDrawComplete: session.IsDrawComplete,
	}, nil
}

// CreateConfig saves a reusable draw setup
func (s *service) CreateConfig(ctx context.Context, input *CreateConfigInput) (*CreateConfigOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidInput)
	}

	if len(input.People) < 2 {
		return nil, fmt.Errorf("%w: at least two people are required", ErrInvalidInput)
	}

	// Configs are drafts, not sessions: they may reference houses that do
	// not exist yet, so the roster checks that guard CreateSession do not
	// apply here.
	houses := make([]*models.House, len(input.Houses))
	for i, h := range input.Houses {
		houseCopy := *h
		if houseCopy.ID == "" {
			houseCopy.ID = s.uuider.NewUUID()
		}
		houses[i] = &houseCopy
	}

	people := make([]*models.ConfigPerson, len(input.People))
	for i, p := range input.People {
		personCopy := *p
		if personCopy.ID == "" {
			personCopy.ID = s.uuider.NewUUID()
		}
		people[i] = &personCopy
	}

	cfg := &models.Config{
		ID:        s.tokens.NewToken(),
		Name:      strings.TrimSpace(input.Name),
		Houses:    houses,
		People:    people,
		CreatedAt: s.clock.Now(),
	}

	if err := s.configRepo.SaveConfig(ctx, &configRepo.SaveConfigInput{
		Config: cfg,
	}); err != nil {
		return nil, err
	}

	return &CreateConfigOutput{
		ConfigID: cfg.ID,
	}, nil
}

// GetConfig retrieves a saved draw setup
func (s *service) GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error) {
	if input == nil || input.ConfigID == "" {
		return nil, fmt.Errorf("%w: config ID is required", ErrInvalidInput)
	}

	cfg, err := s.configRepo.GetConfig(ctx, &configRepo.GetConfigInput{
		ConfigID: input.ConfigID,
	})
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	return &GetConfigOutput{
		Config: cfg,
	}, nil
}

// StorageEnabled reports whether sessions live in shared external storage
func (s *service) StorageEnabled() bool {
	return s.sessionRepo.IsConfigured()
}

// normalizeRoster validates houses and people for a new session, minting ids
// where they are missing and resetting claim state.
func (s *service) normalizeRoster(inHouses []*models.House, inPeople []*models.Person) ([]*models.House, []*models.Person, error) {
	if len(inPeople) < 2 {
		return nil, nil, fmt.Errorf("%w: at least two people are required", ErrInvalidInput)
	}

	if len(inHouses) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one house is required", ErrInvalidInput)
	}

	houses := make([]*models.House, len(inHouses))
	houseIDs := make(map[string]struct{}, len(inHouses))
	for i, h := range inHouses {
		if h == nil {
			return nil, nil, fmt.Errorf("%w: house cannot be null", ErrInvalidInput)
		}
		houseCopy := *h
		if houseCopy.ID == "" {
			houseCopy.ID = s.uuider.NewUUID()
		}
		if _, dup := houseIDs[houseCopy.ID]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate house id %q", ErrInvalidInput, houseCopy.ID)
		}
		houseIDs[houseCopy.ID] = struct{}{}
		houses[i] = &houseCopy
	}

	people := make([]*models.Person, len(inPeople))
	personIDs := make(map[string]struct{}, len(inPeople))
	for i, p := range inPeople {
		if p == nil {
			return nil, nil, fmt.Errorf("%w: person cannot be null", ErrInvalidInput)
		}
		personCopy := *p
		personCopy.Claimed = false
		if personCopy.Name == "" {
			return nil, nil, fmt.Errorf("%w: person name cannot be empty", ErrInvalidInput)
		}
		if personCopy.ID == "" {
			personCopy.ID = s.uuider.NewUUID()
		}
		if _, dup := personIDs[personCopy.ID]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate person id %q", ErrInvalidInput, personCopy.ID)
		}
		if _, ok := houseIDs[personCopy.HouseID]; !ok {
			return nil, nil, fmt.Errorf("%w: person %q references unknown house %q", ErrInvalidInput, personCopy.Name, personCopy.HouseID)
		}
		personIDs[personCopy.ID] = struct{}{}
		people[i] = &personCopy
	}

	return houses, people, nil
}
