package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. The device uses them as
// message idempotency keys and the server as request trace ids, so both sort
// by creation time in the logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
