package cuuid

import (
	"crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"io"
	"sync"
)

const (
	// clockSequenceMask keeps the 14 bits a UUID clock sequence can hold.
	clockSequenceMask = 0x3FFF

	// clockSequenceSlots is the number of independent counters in a pool.
	// Slots are selected by hashing the node identifier, so generators with
	// unrelated node identifiers do not contend on one lock.
	clockSequenceSlots = 32

	// maxPerTick is the number of distinct clock sequence values, and
	// therefore the number of UUIDs one slot can issue for a single
	// timestamp tick before overrunning.
	maxPerTick = clockSequenceMask + 1
)

// clockSequenceSlot tracks the state of one counter in the pool.
// All fields are guarded by mu.
type clockSequenceSlot struct {
	mu            sync.Mutex
	seeded        bool
	lastTimestamp uint64
	sequence      uint16
	issued        int // UUIDs issued for lastTimestamp
}

// ClockSequencePool hands out clock sequence values so that no two UUIDs
// ever share the same (timestamp, node identifier, clock sequence) triple.
//
// The pool holds a fixed array of independent counters. Each node identifier
// maps to one counter, which remembers the timestamp it last issued for and
// the last sequence it issued: repeated or regressed timestamps increment
// the sequence modulo 16,384, preserving creation order within a tick.
//
// A single pool is shared by all generators constructed without an explicit
// WithClockSequencePool option. Tests that need isolation construct a fresh
// pool instead of resetting the shared one.
type ClockSequencePool struct {
	slots      [clockSequenceSlots]clockSequenceSlot
	randReader io.Reader
}

// NewClockSequencePool creates a pool seeded from crypto/rand.
func NewClockSequencePool() *ClockSequencePool {
	return NewClockSequencePoolWithReader(rand.Reader)
}

// NewClockSequencePoolWithReader creates a pool whose first-use seeds are
// read from r. This is primarily useful for deterministic testing.
func NewClockSequencePoolWithReader(r io.Reader) *ClockSequencePool {
	return &ClockSequencePool{randReader: r}
}

// defaultClockSequencePool is the process-wide pool shared by generators
// that do not configure their own.
var defaultClockSequencePool = NewClockSequencePool()

// Next returns the clock sequence to use for a UUID with the given
// timestamp and node identifier. The first call for a node seeds its slot
// with a random 14-bit value; a timestamp equal to or older than the slot's
// last one increments the sequence, wrapping to 0 after 16,383.
//
// Next returns ErrClockSequenceOverrun once all 16,384 values have been
// issued for the exact same timestamp value; the slot keeps rejecting that
// timestamp until it advances.
func (p *ClockSequencePool) Next(timestamp, nodeID uint64) (uint16, error) {
	slot := &p.slots[slotIndex(nodeID)]
	slot.mu.Lock()
	defer slot.mu.Unlock()

	if !slot.seeded {
		seed, err := randomClockSequence(p.randReader)
		if err != nil {
			return 0, err
		}
		slot.seeded = true
		slot.sequence = seed
		slot.lastTimestamp = timestamp
		slot.issued = 1
		return slot.sequence, nil
	}

	switch {
	case timestamp > slot.lastTimestamp:
		// The clock advanced: the sequence is kept as is, only the
		// per-tick accounting restarts.
		slot.lastTimestamp = timestamp
		slot.issued = 1
	case timestamp == slot.lastTimestamp:
		if slot.issued >= maxPerTick {
			return 0, ErrClockSequenceOverrun
		}
		slot.issued++
		slot.sequence = (slot.sequence + 1) & clockSequenceMask
	default:
		// The clock went backward. The incremented sequence keeps the
		// regressed timestamp from colliding with values issued before,
		// and per-tick accounting restarts on the regressed value so a
		// burst sitting on it still overruns after 16,384 issues.
		slot.lastTimestamp = timestamp
		slot.issued = 1
		slot.sequence = (slot.sequence + 1) & clockSequenceMask
	}

	return slot.sequence, nil
}

// slotIndex maps a node identifier to its counter slot.
func slotIndex(nodeID uint64) int {
	var b [6]byte
	b[0] = byte(nodeID >> 40)
	b[1] = byte(nodeID >> 32)
	b[2] = byte(nodeID >> 24)
	b[3] = byte(nodeID >> 16)
	b[4] = byte(nodeID >> 8)
	b[5] = byte(nodeID)
	h := fnv.New32a()
	h.Write(b[:])
	return int(h.Sum32() % clockSequenceSlots)
}

// randomClockSequence reads a random 14-bit seed from r.
func randomClockSequence(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]) & clockSequenceMask, nil
}
