package cuuid

import (
	"encoding/binary"
	"runtime"
	"sync"
)

// maxOverrunRetries bounds the spin-wait of generators configured with
// WithOverrunSuppression. Each retry re-reads the timestamp source, so with
// the system clock a single retry normally lands on a fresh tick.
const maxOverrunRetries = 64

// TimeGenerator creates time-based (version 1) or time-ordered (version 6)
// UUIDs from a timestamp, a clock sequence and a node identifier.
//
// The configuration is fixed at construction and every method is safe for
// concurrent use; generators sharing a clock sequence pool never issue the
// same (timestamp, node, clock sequence) triple.
type TimeGenerator struct {
	version  Version
	source   TimestampSource
	pool     *ClockSequencePool
	node     uint64
	suppress bool
}

// NewTimeGenerator creates a version 1 UUID generator. Without options it
// reads the system clock, draws clock sequences from the shared
// process-wide pool, and uses a random multicast node identifier.
func NewTimeGenerator(opts ...Option) (*TimeGenerator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newTimeGenerator(VersionTimeBased, cfg)
}

// NewTimeOrderedGenerator creates a version 6 UUID generator. Version 6
// reorders the timestamp fields so that the raw 128-bit values sort
// lexicographically by creation time.
func NewTimeOrderedGenerator(opts ...Option) (*TimeGenerator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newTimeGenerator(VersionTimeOrdered, cfg)
}

func newTimeGenerator(version Version, cfg config) (*TimeGenerator, error) {
	node, err := resolveNodeID(cfg)
	if err != nil {
		return nil, err
	}
	return &TimeGenerator{
		version:  version,
		source:   cfg.source,
		pool:     cfg.pool,
		node:     node,
		suppress: cfg.suppress,
	}, nil
}

// resolveNodeID picks the generator's node identifier once, at
// construction. Interface enumeration is kept off the generation hot path.
func resolveNodeID(cfg config) (uint64, error) {
	switch cfg.nodeMode {
	case nodeFixed, nodeFixedMulticast:
		return cfg.node, nil
	case nodeHardware:
		node, err := hardwareNodeID(cfg.interfaces)
		if err == ErrNoHardwareAddress {
			return randomNodeID(cfg.randReader)
		}
		return node, err
	default:
		return randomNodeID(cfg.randReader)
	}
}

// NodeID returns the node identifier the generator stamps into its UUIDs.
func (g *TimeGenerator) NodeID() uint64 {
	return g.node
}

// Version returns the UUID version the generator produces (1 or 6).
func (g *TimeGenerator) Version() Version {
	return g.version
}

// New creates a UUID from the current timestamp. It fails with
// ErrClockSequenceOverrun only when more than 16,384 UUIDs are requested
// within one 100ns tick and overrun suppression is off; no partially
// assembled UUID is ever returned.
func (g *TimeGenerator) New() (UUID, error) {
	timestamp := g.source.Timestamp()
	sequence, err := g.pool.Next(timestamp, g.node)
	if err == ErrClockSequenceOverrun && g.suppress {
		for retry := 0; retry < maxOverrunRetries && err == ErrClockSequenceOverrun; retry++ {
			runtime.Gosched()
			timestamp = g.source.Timestamp()
			sequence, err = g.pool.Next(timestamp, g.node)
		}
	}
	if err != nil {
		return Nil, err
	}
	return g.layout(timestamp, sequence), nil
}

// layout assembles the 128-bit value from its fields.
//
// Version 1 splits the 60-bit timestamp low-first:
// time_low (32) | time_mid (16) | version (4) + time_hi (12).
// Version 6 keeps it big-endian for sortability:
// time_high (48) | version (4) + time_low (12).
func (g *TimeGenerator) layout(timestamp uint64, sequence uint16) UUID {
	var u UUID
	timestamp &= timestampMask

	if g.version == VersionTimeOrdered {
		msb := (timestamp>>12)<<16 |
			uint64(VersionTimeOrdered)<<12 |
			(timestamp & 0x0FFF)
		binary.BigEndian.PutUint64(u[0:8], msb)
	} else {
		binary.BigEndian.PutUint32(u[0:4], uint32(timestamp))
		binary.BigEndian.PutUint16(u[4:6], uint16(timestamp>>32))
		binary.BigEndian.PutUint16(u[6:8], uint16(timestamp>>48)&0x0FFF|uint16(VersionTimeBased)<<12)
	}

	binary.BigEndian.PutUint16(u[8:10], sequence&clockSequenceMask)
	u[8] = (u[8] & 0x3F) | 0x80 // RFC 4122 variant
	putNodeID(u[10:16], g.node)

	return u
}

// Default generators for the package-level constructors. They are created
// lazily and share the process-wide clock sequence pool.
var (
	defaultTimeBased          = sync.OnceValues(func() (*TimeGenerator, error) { return NewTimeGenerator() })
	defaultTimeBasedWithMAC   = sync.OnceValues(func() (*TimeGenerator, error) { return NewTimeGenerator(WithHardwareNodeID()) })
	defaultTimeOrdered        = sync.OnceValues(func() (*TimeGenerator, error) { return NewTimeOrderedGenerator() })
	defaultTimeOrderedWithMAC = sync.OnceValues(func() (*TimeGenerator, error) { return NewTimeOrderedGenerator(WithHardwareNodeID()) })
)

// NewV1 creates a version 1 UUID with a random multicast node identifier,
// using a shared default generator.
func NewV1() (UUID, error) {
	g, err := defaultTimeBased()
	if err != nil {
		return Nil, err
	}
	return g.New()
}

// NewV1WithMAC creates a version 1 UUID carrying the machine's hardware
// address as node identifier (falling back to a random one if none exists).
func NewV1WithMAC() (UUID, error) {
	g, err := defaultTimeBasedWithMAC()
	if err != nil {
		return Nil, err
	}
	return g.New()
}

// NewV6 creates a version 6 UUID with a random multicast node identifier,
// using a shared default generator.
func NewV6() (UUID, error) {
	g, err := defaultTimeOrdered()
	if err != nil {
		return Nil, err
	}
	return g.New()
}

// NewV6WithMAC creates a version 6 UUID carrying the machine's hardware
// address as node identifier (falling back to a random one if none exists).
func NewV6WithMAC() (UUID, error) {
	g, err := defaultTimeOrderedWithMAC()
	if err != nil {
		return Nil, err
	}
	return g.New()
}
