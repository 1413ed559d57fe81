package cuuid

import (
	"encoding/binary"
	"sync"
)

// LocalDomain is the one-byte identifier domain embedded in a DCE Security
// (version 2) UUID.
type LocalDomain byte

// Standard local domains registered by DCE 1.1 Authentication and Security
// Services. On a POSIX host Person holds a UID and Group a GID.
const (
	LocalDomainPerson LocalDomain = iota
	LocalDomainGroup
	LocalDomainOrg
)

// DCEGenerator creates DCE Security (version 2) UUIDs.
//
// A version 2 UUID is a version 1 UUID with three fields reinterpreted:
// time_low carries a local identifier, clock_seq_low carries the local
// domain, and the low six bits of clock_seq_hi carry a rolling counter.
// Truncating time_low leaves the embedded clock a resolution of about
// seven minutes, so the counter disambiguates bursts the version 1 clock
// sequence alone cannot: 64 UUIDs per node, domain and identifier per tick.
type DCEGenerator struct {
	inner *TimeGenerator

	mu      sync.Mutex
	counter uint8 // rolling, 0..63

	domain    LocalDomain
	hasDomain bool
}

// NewDCEGenerator creates a version 2 UUID generator. The underlying
// version 1 generator always suppresses clock sequence overruns; the
// rolling counter takes over collision avoidance within a tick.
// Configure WithLocalDomain to enable the NewWithID form.
func NewDCEGenerator(opts ...Option) (*DCEGenerator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.suppress = true
	inner, err := newTimeGenerator(VersionTimeBased, cfg)
	if err != nil {
		return nil, err
	}
	return &DCEGenerator{
		inner:     inner,
		domain:    cfg.domain,
		hasDomain: cfg.hasDomain,
	}, nil
}

// NewWithDomain creates a DCE Security UUID for the given local domain and
// local identifier.
func (g *DCEGenerator) NewWithDomain(domain LocalDomain, localID int32) (UUID, error) {
	u, err := g.inner.New()
	if err != nil {
		return Nil, err
	}

	g.mu.Lock()
	counter := g.counter
	g.counter = (g.counter + 1) & 0x3F
	g.mu.Unlock()

	// time_low becomes the local identifier, clock_seq_low the domain, and
	// clock_seq_hi the counter under the variant bits. Version becomes 2.
	binary.BigEndian.PutUint32(u[0:4], uint32(localID))
	u[8] = 0x80 | counter
	u[9] = byte(domain)
	u[6] = byte(VersionDCESecurity)<<4 | (u[6] & 0x0F)

	return u, nil
}

// NewWithID creates a DCE Security UUID for the given local identifier
// using the generator's configured default domain. It fails with
// ErrMissingLocalDomain when no domain was configured.
func (g *DCEGenerator) NewWithID(localID int32) (UUID, error) {
	if !g.hasDomain {
		return Nil, ErrMissingLocalDomain
	}
	return g.NewWithDomain(g.domain, localID)
}

// New always fails with ErrUnsupportedOperation: a DCE Security UUID
// cannot be created without a local domain and a local identifier.
func (g *DCEGenerator) New() (UUID, error) {
	return Nil, ErrUnsupportedOperation
}

var (
	defaultDCE        = sync.OnceValues(func() (*DCEGenerator, error) { return NewDCEGenerator() })
	defaultDCEWithMAC = sync.OnceValues(func() (*DCEGenerator, error) { return NewDCEGenerator(WithHardwareNodeID()) })
)

// NewDCE creates a version 2 UUID for the given local domain and local
// identifier, using a shared default generator with a random multicast
// node identifier.
func NewDCE(domain LocalDomain, localID int32) (UUID, error) {
	g, err := defaultDCE()
	if err != nil {
		return Nil, err
	}
	return g.NewWithDomain(domain, localID)
}

// NewDCEWithMAC is like NewDCE but stamps the machine's hardware address
// into the node identifier field.
func NewDCEWithMAC(domain LocalDomain, localID int32) (UUID, error) {
	g, err := defaultDCEWithMAC()
	if err != nil {
		return Nil, err
	}
	return g.NewWithDomain(domain, localID)
}
