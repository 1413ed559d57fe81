// Package cuuid creates and inspects RFC 4122 UUIDs of every standard
// version, with a focus on the time-based family: version 1 (time-based),
// version 2 (DCE Security) and version 6 (time-ordered). Name-based
// (versions 3 and 5), random (version 4) and non-standard COMB GUIDs are
// also provided.
//
// Time-based UUIDs combine a 60-bit gregorian timestamp, a 14-bit clock
// sequence and a 48-bit node identifier. The clock sequence keeps bursts
// faster than the clock resolution collision-free: a process-wide pool of
// per-node counters increments on repeated or regressed timestamps, so two
// UUIDs never share the same (timestamp, node, clock sequence) triple.
// Version 6 reorders the timestamp fields so the raw values sort
// lexicographically by creation time, making them ideal for:
//   - Database primary keys (improved B-tree performance)
//   - Distributed systems requiring time-ordered identifiers
//   - Event sourcing and audit logs
//
// Basic Usage:
//
//	// Generate a time-ordered UUID (version 6)
//	id, err := cuuid.NewV6()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from string
//	id, err := cuuid.Parse("f47ac10b-58cc-1372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inspect the encoded fields
//	t, _ := id.Time()
//	seq, _ := id.ClockSequence()
//	node, _ := id.NodeID()
//
// Custom Generators:
//
//	// A version 1 generator stamping the machine's MAC address
//	gen, err := cuuid.NewTimeGenerator(cuuid.WithHardwareNodeID())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, err := gen.New()
//
//	// A deterministic generator for tests
//	gen, err := cuuid.NewTimeOrderedGenerator(
//	    cuuid.WithTimestampSource(cuuid.FixedTimeSource(t)),
//	    cuuid.WithClockSequencePool(cuuid.NewClockSequencePool()),
//	)
//
// Thread Safety:
//
// All operations are thread-safe. Generators may be shared freely between
// goroutines, and generators sharing a clock sequence pool coordinate
// through per-node locks. Configuration is fixed at construction; a
// generator never changes behavior after it is created.
//
// Failure Modes:
//
// Creating more than 16,384 UUIDs within a single 100-nanosecond tick for
// one node identifier exhausts the clock sequence space and fails with
// ErrClockSequenceOverrun. Generators built with WithOverrunSuppression
// retry with a bounded spin instead; the DCE Security generator always
// suppresses overruns and layers a rolling counter on top.
//
// Standards Compliance:
//
// This implementation follows RFC 4122 for the binary layout, versions and
// variant bits, and DCE 1.1 Authentication and Security Services for
// version 2 field reinterpretation. COMB GUIDs are a non-standard but
// widely used extension embedding a unix millisecond timestamp.
package cuuid
