package cuuid

import (
	"crypto/rand"
	"io"
	"net"
)

type nodeMode int

const (
	nodeRandom nodeMode = iota
	nodeFixed
	nodeFixedMulticast
	nodeHardware
)

// config collects generator options. Options are applied once at
// construction; generators never mutate their configuration afterwards.
type config struct {
	source       TimestampSource
	pool         *ClockSequencePool
	randReader   io.Reader
	interfaces   func() ([]net.Interface, error)
	node         uint64
	nodeMode     nodeMode
	suppress     bool
	domain       LocalDomain
	hasDomain    bool
	namespace    UUID
	hasNamespace bool
}

func defaultConfig() config {
	return config{
		source:     SystemTimestampSource(),
		pool:       defaultClockSequencePool,
		randReader: rand.Reader,
		interfaces: net.Interfaces,
	}
}

// Option configures a generator at construction time.
type Option func(*config)

// WithTimestampSource overrides the timestamp source of a time-based
// generator. Use FixedTimestampSource for deterministic tests.
func WithTimestampSource(source TimestampSource) Option {
	return func(c *config) { c.source = source }
}

// WithClockSequencePool makes a time-based generator draw clock sequences
// from the given pool instead of the shared process-wide one.
func WithClockSequencePool(pool *ClockSequencePool) Option {
	return func(c *config) { c.pool = pool }
}

// WithRandomReader overrides the random source used for node identifier
// generation and random UUID payloads. The default is crypto/rand.
func WithRandomReader(r io.Reader) Option {
	return func(c *config) { c.randReader = r }
}

// WithNodeID fixes the node identifier to the given 48-bit value, used
// exactly as provided. Meant for identifiers that are real hardware
// addresses or are coordinated externally.
func WithNodeID(nodeID uint64) Option {
	return func(c *config) {
		c.node = nodeID & nodeMask
		c.nodeMode = nodeFixed
	}
}

// WithMulticastNodeID fixes the node identifier to the given value with the
// multicast bit forced on, flagging it as not a real hardware address.
func WithMulticastNodeID(nodeID uint64) Option {
	return func(c *config) {
		c.node = SetMulticastNodeID(nodeID)
		c.nodeMode = nodeFixedMulticast
	}
}

// WithInterfaces overrides the network interface enumeration consulted by
// WithHardwareNodeID. The default is net.Interfaces.
func WithInterfaces(interfaces func() ([]net.Interface, error)) Option {
	return func(c *config) { c.interfaces = interfaces }
}

// WithHardwareNodeID makes the generator use the hardware address of a
// network interface as its node identifier. The interfaces are enumerated
// once, at construction; if none has a usable address the generator falls
// back to a random multicast identifier.
func WithHardwareNodeID() Option {
	return func(c *config) { c.nodeMode = nodeHardware }
}

// WithOverrunSuppression makes a time-based generator retry instead of
// failing when the clock sequence space is exhausted for a timestamp tick.
// The retry is a bounded spin: the generator re-reads its timestamp source
// up to 64 times, yielding the processor between attempts, and reports
// ErrClockSequenceOverrun only if the tick never advances.
func WithOverrunSuppression() Option {
	return func(c *config) { c.suppress = true }
}

// WithLocalDomain sets the default local domain of a DCE Security
// generator, enabling its NewWithID form.
func WithLocalDomain(domain LocalDomain) Option {
	return func(c *config) {
		c.domain = domain
		c.hasDomain = true
	}
}

// WithNamespace sets the namespace UUID of a name-based generator. The
// namespace is prepended to every name before hashing.
func WithNamespace(namespace UUID) Option {
	return func(c *config) {
		c.namespace = namespace
		c.hasNamespace = true
	}
}
