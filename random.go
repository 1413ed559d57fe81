package cuuid

import (
	"crypto/rand"
	"io"
)

// RandomGenerator creates random-based (version 4) UUIDs: 122 random bits
// plus the version and variant bits.
type RandomGenerator struct {
	randReader io.Reader
}

// NewRandomGenerator creates a version 4 generator reading crypto/rand.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{randReader: rand.Reader}
}

// NewRandomGeneratorWithReader creates a version 4 generator with a custom
// random source. This is primarily useful for deterministic testing.
func NewRandomGeneratorWithReader(r io.Reader) *RandomGenerator {
	return &RandomGenerator{randReader: r}
}

// New creates a version 4 UUID.
func (g *RandomGenerator) New() (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(g.randReader, u[:]); err != nil {
		return Nil, err
	}
	u[6] = byte(VersionRandom)<<4 | (u[6] & 0x0F)
	u[8] = (u[8] & 0x3F) | 0x80
	return u, nil
}

var defaultRandom = NewRandomGenerator()

// NewV4 creates a version 4 UUID using the package-level generator.
func NewV4() (UUID, error) {
	return defaultRandom.New()
}
