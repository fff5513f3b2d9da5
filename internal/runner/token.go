package runner

import "github.com/google/uuid"

// TokenGenerator produces run tokens that tag a transcript.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-ordered UUIDv7 run tokens.
// Uses github.com/google/uuid for RFC 4122 compliant UUIDs.
//
// UUIDv7 tokens sort by creation time, which keeps transcript directories
// and log lines naturally ordered.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 token.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
