package cuuid

import (
	"crypto/rand"
	"io"
	"time"
)

// CombGenerator creates COMB GUIDs: non-standard identifiers that carry the
// version 4 bits but embed a 48-bit unix millisecond timestamp next to the
// random payload, so that values generated around the same time cluster in
// database indexes.
//
// The classic COMB puts the timestamp at the least significant bytes, the
// position SQL Server sorts by first; the alternate COMB puts it at the
// most significant bytes, where lexicographic ordering sorts by time.
type CombGenerator struct {
	randReader io.Reader
	prefix     bool
	nowMillis  func() int64
}

// NewCombGenerator creates a COMB generator with the millisecond timestamp
// as a suffix (least significant bytes).
func NewCombGenerator() *CombGenerator {
	return &CombGenerator{randReader: rand.Reader, nowMillis: unixMillis}
}

// NewAltCombGenerator creates a COMB generator with the millisecond
// timestamp as a prefix (most significant bytes).
func NewAltCombGenerator() *CombGenerator {
	return &CombGenerator{randReader: rand.Reader, prefix: true, nowMillis: unixMillis}
}

func unixMillis() int64 {
	return time.Now().UnixMilli()
}

// New creates a COMB GUID from the current time and 74 random bits.
func (g *CombGenerator) New() (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(g.randReader, u[:]); err != nil {
		return Nil, err
	}

	millis := uint64(g.nowMillis())
	if g.prefix {
		putNodeID(u[0:6], millis)
	} else {
		putNodeID(u[10:16], millis)
	}

	u[6] = byte(VersionRandom)<<4 | (u[6] & 0x0F)
	u[8] = (u[8] & 0x3F) | 0x80
	return u, nil
}

var (
	defaultComb    = NewCombGenerator()
	defaultAltComb = NewAltCombGenerator()
)

// NewComb creates a COMB GUID (timestamp suffix) using the package-level
// generator.
func NewComb() (UUID, error) {
	return defaultComb.New()
}

// NewAltComb creates an alternate COMB GUID (timestamp prefix) using the
// package-level generator.
func NewAltComb() (UUID, error) {
	return defaultAltComb.New()
}

// CombMillis extracts the embedded unix millisecond timestamp of a COMB
// GUID created with a timestamp suffix.
func (u UUID) CombMillis() int64 {
	return int64(nodeIDFromBytes(u[10:16]))
}

// AltCombMillis extracts the embedded unix millisecond timestamp of an
// alternate COMB GUID created with a timestamp prefix.
func (u UUID) AltCombMillis() int64 {
	return int64(nodeIDFromBytes(u[0:6]))
}
