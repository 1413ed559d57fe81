package cuuid

import (
	"crypto/md5"
	"crypto/sha1"
)

// Namespaces predefined by RFC 4122 Appendix C for name-based UUIDs.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NameGenerator creates name-based UUIDs: version 3 hashes the name with
// MD5, version 5 with SHA-1. The same namespace and name always produce
// the same UUID.
type NameGenerator struct {
	version      Version
	sum          func([]byte) []byte
	namespace    UUID
	hasNamespace bool
}

// NewNameMD5Generator creates a version 3 (MD5) generator. Without a
// WithNamespace option the name is hashed on its own, which matches the
// output of hashing tools like md5sum.
func NewNameMD5Generator(opts ...Option) *NameGenerator {
	return newNameGenerator(VersionNameBasedMD5, md5Sum, opts)
}

// NewNameSHA1Generator creates a version 5 (SHA-1) generator.
func NewNameSHA1Generator(opts ...Option) *NameGenerator {
	return newNameGenerator(VersionNameBasedSHA1, sha1Sum, opts)
}

func newNameGenerator(version Version, sum func([]byte) []byte, opts []Option) *NameGenerator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &NameGenerator{
		version:      version,
		sum:          sum,
		namespace:    cfg.namespace,
		hasNamespace: cfg.hasNamespace,
	}
}

func md5Sum(data []byte) []byte {
	s := md5.Sum(data)
	return s[:]
}

func sha1Sum(data []byte) []byte {
	s := sha1.Sum(data)
	return s[:]
}

// New creates a name-based UUID for the given name. The configured
// namespace, if any, is hashed before the name per RFC 4122 section 4.3.
func (g *NameGenerator) New(name []byte) UUID {
	var u UUID
	data := name
	if g.hasNamespace {
		data = make([]byte, 0, 16+len(name))
		data = append(data, g.namespace[:]...)
		data = append(data, name...)
	}
	copy(u[:], g.sum(data))
	u[6] = byte(g.version)<<4 | (u[6] & 0x0F)
	u[8] = (u[8] & 0x3F) | 0x80
	return u
}

// NewString is New for a string name.
func (g *NameGenerator) NewString(name string) UUID {
	return g.New([]byte(name))
}

// NewV3 creates a version 3 (MD5) UUID for a namespace and a name.
func NewV3(namespace UUID, name string) UUID {
	return NewNameMD5Generator(WithNamespace(namespace)).NewString(name)
}

// NewV5 creates a version 5 (SHA-1) UUID for a namespace and a name.
func NewV5(namespace UUID, name string) UUID {
	return NewNameSHA1Generator(WithNamespace(namespace)).NewString(name)
}
