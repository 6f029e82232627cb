package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque record IDs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns 16 random bytes as hex, optionally behind a prefix naming the
// writer that created the record, e.g. "mt-" for recorded matches or "imp-" for imports.
type RandomGenerator struct {
	prefix string
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func NewPrefixedGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return g.prefix + hex.EncodeToString(buf), nil
}
