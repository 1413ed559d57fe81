package cuuid

import (
	"crypto/rand"
	"io"
	"net"
)

const (
	// nodeMask keeps the 48 bits a UUID node identifier can hold.
	nodeMask = 0x0000FFFFFFFFFFFF

	// multicastBit is the multicast bit of a node identifier: the least
	// significant bit of its first octet (RFC 4122 section 4.1.6). A set
	// bit signals that the identifier is not a real hardware address.
	multicastBit = 0x0000010000000000
)

// RandomNodeID returns a cryptographically random 48-bit node identifier
// with the multicast bit forced on.
func RandomNodeID() (uint64, error) {
	return randomNodeID(rand.Reader)
}

func randomNodeID(r io.Reader) (uint64, error) {
	var b [6]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return SetMulticastNodeID(nodeIDFromBytes(b[:])), nil
}

// HardwareNodeID returns the node identifier of the first network interface
// that is not a loopback and carries a 6-byte, non-zero hardware address.
// It returns ErrNoHardwareAddress when no such interface exists.
func HardwareNodeID() (uint64, error) {
	return hardwareNodeID(net.Interfaces)
}

func hardwareNodeID(interfaces func() ([]net.Interface, error)) (uint64, error) {
	ifaces, err := interfaces()
	if err != nil {
		return 0, err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if len(iface.HardwareAddr) != 6 {
			continue
		}
		id := nodeIDFromBytes(iface.HardwareAddr)
		if id == 0 {
			continue
		}
		return id, nil
	}
	return 0, ErrNoHardwareAddress
}

// IsMulticastNodeID reports whether the multicast bit of the node
// identifier is set, i.e. whether it is flagged as not globally unique.
func IsMulticastNodeID(nodeID uint64) bool {
	return nodeID&multicastBit != 0
}

// SetMulticastNodeID returns the node identifier with the multicast bit
// forced on.
func SetMulticastNodeID(nodeID uint64) uint64 {
	return (nodeID & nodeMask) | multicastBit
}

func nodeIDFromBytes(b []byte) uint64 {
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

func putNodeID(dst []byte, nodeID uint64) {
	dst[0] = byte(nodeID >> 40)
	dst[1] = byte(nodeID >> 32)
	dst[2] = byte(nodeID >> 24)
	dst[3] = byte(nodeID >> 16)
	dst[4] = byte(nodeID >> 8)
	dst[5] = byte(nodeID)
}
