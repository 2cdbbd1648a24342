package token

import (
	"crypto/rand"
	"encoding/hex"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_token.go github.com/dmateos/amigo/internal/common/token Generator

// Generator mints the opaque identifiers used as session and config handles.
// These ids act as bearer secrets, so they must be unguessable.
type Generator interface {
	NewToken() string
}

// DefaultGenerator implements the Generator interface using crypto/rand

type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewToken returns 24 hex characters built from 12 random bytes.
func (g *DefaultGenerator) NewToken() string {
	b := make([]byte, 12)
	// crypto/rand.Read never fails on supported platforms
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
