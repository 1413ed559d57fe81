package cuuid

import (
	"encoding/binary"
	"time"
)

// Field extraction. Every extractor validates the variant and version of
// the UUID before reading: a field request on a UUID whose version does not
// define that field fails with ErrInvalidVersion, and non-RFC 4122 values
// fail with ErrInvalidVariant.

// Timestamp extracts the 60-bit gregorian timestamp of a version 1 or
// version 6 UUID.
func (u UUID) Timestamp() (uint64, error) {
	if u.Variant() != VariantRFC4122 {
		return 0, ErrInvalidVariant
	}
	switch u.Version() {
	case VersionTimeBased:
		return uint64(binary.BigEndian.Uint32(u[0:4])) |
			uint64(binary.BigEndian.Uint16(u[4:6]))<<32 |
			uint64(binary.BigEndian.Uint16(u[6:8])&0x0FFF)<<48, nil
	case VersionTimeOrdered:
		msb := binary.BigEndian.Uint64(u[0:8])
		return (msb>>16)<<12 | (msb & 0x0FFF), nil
	default:
		return 0, ErrInvalidVersion
	}
}

// Time extracts the creation time of a version 1 or version 6 UUID in UTC,
// at 100-nanosecond granularity.
func (u UUID) Time() (time.Time, error) {
	timestamp, err := u.Timestamp()
	if err != nil {
		return time.Time{}, err
	}
	return ToTime(timestamp), nil
}

// ClockSequence extracts the 14-bit clock sequence of a version 1 or
// version 6 UUID.
func (u UUID) ClockSequence() (uint16, error) {
	if u.Variant() != VariantRFC4122 {
		return 0, ErrInvalidVariant
	}
	switch u.Version() {
	case VersionTimeBased, VersionTimeOrdered:
		return uint16(u[8]&0x3F)<<8 | uint16(u[9]), nil
	default:
		return 0, ErrInvalidVersion
	}
}

// NodeID extracts the 48-bit node identifier of a version 1 or version 6
// UUID.
func (u UUID) NodeID() (uint64, error) {
	if u.Variant() != VariantRFC4122 {
		return 0, ErrInvalidVariant
	}
	switch u.Version() {
	case VersionTimeBased, VersionTimeOrdered:
		return nodeIDFromBytes(u[10:16]), nil
	default:
		return 0, ErrInvalidVersion
	}
}

// LocalDomain extracts the local domain of a DCE Security (version 2)
// UUID.
func (u UUID) LocalDomain() (LocalDomain, error) {
	if u.Variant() != VariantRFC4122 {
		return 0, ErrInvalidVariant
	}
	if u.Version() != VersionDCESecurity {
		return 0, ErrInvalidVersion
	}
	return LocalDomain(u[9]), nil
}

// LocalIdentifier extracts the local identifier of a DCE Security
// (version 2) UUID.
func (u UUID) LocalIdentifier() (int32, error) {
	if u.Variant() != VariantRFC4122 {
		return 0, ErrInvalidVariant
	}
	if u.Version() != VersionDCESecurity {
		return 0, ErrInvalidVersion
	}
	return int32(binary.BigEndian.Uint32(u[0:4])), nil
}
