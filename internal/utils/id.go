package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a prefixed random identifier, e.g. "q_x1f9c02ab4km".
// Prefixes keep ids self-describing across collections.
func NewID(prefix string) string {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		// Only fails if the entropy source is broken, which is not recoverable.
		panic(err)
	}
	return prefix + "_" + id
}

// NewSessionToken returns an opaque bearer token with enough entropy
// to be unguessable.
func NewSessionToken() string {
	token, err := gonanoid.Generate(idAlphabet, 32)
	if err != nil {
		panic(err)
	}
	return "session_" + token
}
