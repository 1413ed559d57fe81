package cuuid

import (
	"bytes"
	"net"
	"testing"
)

func TestRandomNodeID(t *testing.T) {
	for i := 0; i < 100; i++ {
		node, err := RandomNodeID()
		if err != nil {
			t.Fatalf("RandomNodeID() error = %v", err)
		}
		if node&^uint64(nodeMask) != 0 {
			t.Errorf("RandomNodeID() = %#x, exceeds 48 bits", node)
		}
		if !IsMulticastNodeID(node) {
			t.Errorf("RandomNodeID() = %#x, multicast bit not set", node)
		}
	}
}

func TestRandomNodeID_Deterministic(t *testing.T) {
	node, err := randomNodeID(bytes.NewReader([]byte{0x02, 0x03, 0x04, 0x05, 0x06, 0x07}))
	if err != nil {
		t.Fatalf("randomNodeID() error = %v", err)
	}
	// 0x020304050607 with the multicast bit forced on.
	if want := uint64(0x030304050607); node != want {
		t.Errorf("randomNodeID() = %#x, want %#x", node, want)
	}
}

func TestSetMulticastNodeID_ForcesBit(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want uint64
	}{
		{"zero", 0x000000000000, 0x010000000000},
		{"already set", 0x010000000000, 0x010000000000},
		{"unicast address", 0x001B21DD2138, 0x011B21DD2138},
		{"beyond 48 bits", 0xFFFF000000000000, 0x010000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetMulticastNodeID(tt.in); got != tt.want {
				t.Errorf("SetMulticastNodeID(%#x) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsMulticastNodeID(t *testing.T) {
	if IsMulticastNodeID(0x001B21DD2138) {
		t.Error("unicast address reported as multicast")
	}
	if !IsMulticastNodeID(0x011B21DD2138) {
		t.Error("multicast address not detected")
	}
}

func TestHardwareNodeID_PicksFirstUsable(t *testing.T) {
	lister := func() ([]net.Interface, error) {
		return []net.Interface{
			{Name: "lo", Flags: net.FlagLoopback, HardwareAddr: net.HardwareAddr{0x00, 0x1B, 0x21, 0xDD, 0x21, 0x38}},
			{Name: "tun0", HardwareAddr: nil},
			{Name: "ib0", HardwareAddr: make(net.HardwareAddr, 20)}, // infiniband, not MAC-48
			{Name: "zero", HardwareAddr: net.HardwareAddr{0, 0, 0, 0, 0, 0}},
			{Name: "eth0", HardwareAddr: net.HardwareAddr{0x00, 0x1B, 0x21, 0xDD, 0x21, 0x39}},
		}, nil
	}

	node, err := hardwareNodeID(lister)
	if err != nil {
		t.Fatalf("hardwareNodeID() error = %v", err)
	}
	if want := uint64(0x001B21DD2139); node != want {
		t.Errorf("hardwareNodeID() = %#x, want %#x", node, want)
	}
	if IsMulticastNodeID(node) {
		t.Error("hardware address should not carry the multicast bit")
	}
}

func TestHardwareNodeID_NoneAvailable(t *testing.T) {
	lister := func() ([]net.Interface, error) {
		return []net.Interface{
			{Name: "lo", Flags: net.FlagLoopback, HardwareAddr: net.HardwareAddr{0x00, 0x1B, 0x21, 0xDD, 0x21, 0x38}},
			{Name: "tun0", HardwareAddr: nil},
		}, nil
	}

	if _, err := hardwareNodeID(lister); err != ErrNoHardwareAddress {
		t.Errorf("hardwareNodeID() error = %v, want ErrNoHardwareAddress", err)
	}
}
