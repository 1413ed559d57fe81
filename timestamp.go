package cuuid

import "time"

// The timestamp of a version 1, 2 or 6 UUID counts 100-nanosecond intervals
// since the adoption of the gregorian calendar (1582-10-15T00:00:00Z).

const (
	// gregorianToUnixTicks is the number of 100ns intervals between
	// 1582-10-15T00:00:00Z and 1970-01-01T00:00:00Z.
	gregorianToUnixTicks = 122192928000000000

	// timestampMask keeps the 60 bits a UUID timestamp can hold.
	// The maximum value maps to 5236-03-31T21:21:00.6846975Z.
	timestampMask = 0x0FFFFFFFFFFFFFFF
)

// ToTimestamp converts a point in time to a 60-bit gregorian timestamp,
// counted in 100-nanosecond intervals since 1582-10-15T00:00:00Z.
func ToTimestamp(t time.Time) uint64 {
	ticks := t.Unix()*10_000_000 + int64(t.Nanosecond())/100
	return uint64(ticks+gregorianToUnixTicks) & timestampMask
}

// ToTime converts a 60-bit gregorian timestamp back to a time.Time in UTC.
// The conversion is exact: ToTime(ToTimestamp(t)) equals t truncated to
// 100-nanosecond granularity for any timestamp in [0, 2^60-1].
func ToTime(timestamp uint64) time.Time {
	ticks := int64(timestamp&timestampMask) - gregorianToUnixTicks
	return time.Unix(ticks/10_000_000, (ticks%10_000_000)*100).UTC()
}

// TimestampSource supplies gregorian timestamps to time-based generators.
type TimestampSource interface {
	// Timestamp returns the current 60-bit gregorian timestamp.
	Timestamp() uint64
}

type systemTimestampSource struct{}

func (systemTimestampSource) Timestamp() uint64 {
	return ToTimestamp(time.Now())
}

// SystemTimestampSource returns the default timestamp source, reading the
// system clock at its native resolution.
func SystemTimestampSource() TimestampSource {
	return systemTimestampSource{}
}

type fixedTimestampSource uint64

func (f fixedTimestampSource) Timestamp() uint64 {
	return uint64(f)
}

// FixedTimestampSource returns a source that always reports the given
// timestamp. It is intended for deterministic testing: it simulates a
// request rate faster than the clock resolution.
func FixedTimestampSource(timestamp uint64) TimestampSource {
	return fixedTimestampSource(timestamp & timestampMask)
}

// FixedTimeSource is like FixedTimestampSource but takes a time.Time.
func FixedTimeSource(t time.Time) TimestampSource {
	return fixedTimestampSource(ToTimestamp(t))
}
