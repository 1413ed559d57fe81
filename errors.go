package cuuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("cuuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("cuuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the requested field is not defined
	// for the version of the UUID it was extracted from
	ErrInvalidVersion = errors.New("cuuid: field is not defined for this UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("cuuid: invalid UUID variant (expected RFC 4122)")

	// ErrClockSequenceOverrun indicates that all 16,384 clock sequence values
	// have already been issued for the current timestamp tick
	ErrClockSequenceOverrun = errors.New("cuuid: clock sequence exhausted for the current timestamp")

	// ErrUnsupportedOperation indicates a structurally disallowed call,
	// such as the argument-less New on a DCE Security generator
	ErrUnsupportedOperation = errors.New("cuuid: unsupported operation for this generator")

	// ErrMissingLocalDomain indicates that a DCE Security UUID was requested
	// through the default-domain form without a local domain configured
	ErrMissingLocalDomain = errors.New("cuuid: no local domain configured")

	// ErrNoHardwareAddress indicates that no network interface with a usable
	// hardware address was found
	ErrNoHardwareAddress = errors.New("cuuid: no usable hardware address found")
)
