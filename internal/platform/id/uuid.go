package id

import "github.com/google/uuid"

// UUIDGenerator issues RFC 4122 random UUIDs. Team ids use this so they stay
// readable in stored documents and URLs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return value.String(), nil
}
