package utils

import "github.com/google/uuid"

// UUIDGenerator issues the correlation ids that tie together the log lines
// of one member fetch or one stub request.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so ids sort by start time in the
// log. If the v7 clock source fails it falls back to a random v4.
func (g *UUIDGenerator) Generate() string {
	return NewTraceID()
}

// NewTraceID is [UUIDGenerator.Generate] without a generator value.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
