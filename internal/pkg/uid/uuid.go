// Package uid generates identifiers for records and requests.
package uid

import "github.com/google/uuid"

// StringID generates opaque string identifiers such as correlation ids.
type StringID interface {
	Generate() string
}

// RecordID generates identifiers for new records.
type RecordID interface {
	NewID() uuid.UUID
}

// UUID generates time-ordered UUIDs, falling back to random ones.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// NewID returns a new UUIDv7, or a UUIDv4 when v7 generation fails.
func (u *UUID) NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Generate returns NewID in its canonical string form.
func (u *UUID) Generate() string {
	return u.NewID().String()
}
