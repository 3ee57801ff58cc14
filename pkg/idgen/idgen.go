package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generate creates a new random task ID (UUID version 4).
func Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

// MustGenerate creates a new unique ID, panicking on error.
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}
