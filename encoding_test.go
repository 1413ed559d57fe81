package cuuid

import (
	"testing"
)

var encodingSample = UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x13, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

func TestUUID_EncodeToHex(t *testing.T) {
	expected := "f47ac10b58cc1372a5670e02b2c3d479"

	got := encodingSample.EncodeToHex()
	if got != expected {
		t.Errorf("EncodeToHex() = %v, want %v", got, expected)
	}
}

func TestDecodeFromHex(t *testing.T) {
	got, err := DecodeFromHex("f47ac10b58cc1372a5670e02b2c3d479")
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}

	if got != encodingSample {
		t.Errorf("DecodeFromHex() = %v, want %v", got, encodingSample)
	}
}

func TestDecodeFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "f47ac10b58cc1372"},
		{"too long", "f47ac10b58cc1372a5670e02b2c3d479ff"},
		{"invalid hex", "g47ac10b58cc1372a5670e02b2c3d479"},
		{"hyphenated", "f47ac10b-58cc-1372-a567-0e02b2c3d479"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromHex(tt.input); err == nil {
				t.Errorf("DecodeFromHex() expected error for input %q", tt.input)
			}
		})
	}
}

func TestDecodeFromBase64(t *testing.T) {
	b64 := encodingSample.EncodeToBase64()

	decoded, err := DecodeFromBase64(b64)
	if err != nil {
		t.Fatalf("DecodeFromBase64() error = %v", err)
	}

	if decoded != encodingSample {
		t.Errorf("DecodeFromBase64() = %v, want %v", decoded, encodingSample)
	}
}

func TestDecodeFromBase64Std(t *testing.T) {
	b64 := encodingSample.EncodeToBase64Std()

	decoded, err := DecodeFromBase64Std(b64)
	if err != nil {
		t.Fatalf("DecodeFromBase64Std() error = %v", err)
	}

	if decoded != encodingSample {
		t.Errorf("DecodeFromBase64Std() = %v, want %v", decoded, encodingSample)
	}
}

func TestDecodeFromBase64_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid base64", "!!!invalid!!!"},
		{"wrong length", "YWJj"}, // "abc", only 3 bytes
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromBase64(tt.input); err == nil {
				t.Errorf("DecodeFromBase64() expected error for input %q", tt.input)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	got, err := FromBytes(encodingSample.Bytes())
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}

	if got != encodingSample {
		t.Errorf("FromBytes() = %v, want %v", got, encodingSample)
	}
}

func TestFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"too short", []byte{0x01, 0x02, 0x03}},
		{"too long", make([]byte, 20)},
		{"empty", []byte{}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBytes(tt.input); err != ErrInvalidLength {
				t.Errorf("FromBytes() error = %v, want %v", err, ErrInvalidLength)
			}
		})
	}
}

func TestMustFromBytes(t *testing.T) {
	uuid := MustFromBytes(encodingSample.Bytes())
	if uuid != encodingSample {
		t.Errorf("MustFromBytes() = %v, want %v", uuid, encodingSample)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() did not panic on invalid input")
		}
	}()
	MustFromBytes([]byte{0x01})
}

func TestEncodingRoundTrips(t *testing.T) {
	generators := []func() (UUID, error){NewV4, NewV1, NewV6, NewComb}

	for _, generate := range generators {
		for i := 0; i < 10; i++ {
			uuid, err := generate()
			if err != nil {
				t.Fatalf("generating UUID: %v", err)
			}

			fromHex, err := DecodeFromHex(uuid.EncodeToHex())
			if err != nil {
				t.Errorf("hex round-trip decode error: %v", err)
			}
			if uuid != fromHex {
				t.Errorf("hex round-trip: got %v, want %v", fromHex, uuid)
			}

			fromB64, err := DecodeFromBase64(uuid.EncodeToBase64())
			if err != nil {
				t.Errorf("base64 round-trip decode error: %v", err)
			}
			if uuid != fromB64 {
				t.Errorf("base64 round-trip: got %v, want %v", fromB64, uuid)
			}

			fromB64Std, err := DecodeFromBase64Std(uuid.EncodeToBase64Std())
			if err != nil {
				t.Errorf("standard base64 round-trip decode error: %v", err)
			}
			if uuid != fromB64Std {
				t.Errorf("standard base64 round-trip: got %v, want %v", fromB64Std, uuid)
			}

			fromBytes, err := FromBytes(uuid.Bytes())
			if err != nil {
				t.Errorf("bytes round-trip decode error: %v", err)
			}
			if uuid != fromBytes {
				t.Errorf("bytes round-trip: got %v, want %v", fromBytes, uuid)
			}
		}
	}
}
