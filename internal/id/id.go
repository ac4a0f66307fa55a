package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Size is the length of every generated book id.
const Size = 16

// Generate creates a random URL-safe NanoID of Size characters
// (e.g. "V1StGXR8_Z5jdHi6").
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate() (string, error) {
	id, err := gonanoid.New(Size)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return id, nil
}
