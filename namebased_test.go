package cuuid

import "testing"

func TestNewV3(t *testing.T) {
	uuid := NewV3(NamespaceDNS, "www.github.com")
	if want := "2c02fba1-0794-3c12-b62b-578ec5f03908"; uuid.String() != want {
		t.Errorf("NewV3() = %s, want %s", uuid, want)
	}
}

func TestNewV5(t *testing.T) {
	uuid := NewV5(NamespaceDNS, "www.github.com")
	if want := "04e16ed4-cd93-55f3-b2e3-1a097fc19832"; uuid.String() != want {
		t.Errorf("NewV5() = %s, want %s", uuid, want)
	}
}

func TestNameGenerator_KnownAnswers(t *testing.T) {
	tests := []struct {
		name  string
		gen   *NameGenerator
		input string
		want  string
	}{
		{
			name:  "md5 with dns namespace",
			gen:   NewNameMD5Generator(WithNamespace(NamespaceDNS)),
			input: "www.github.com",
			want:  "2c02fba1-0794-3c12-b62b-578ec5f03908",
		},
		{
			name:  "md5 without namespace",
			gen:   NewNameMD5Generator(),
			input: "www.github.com",
			want:  "d85b3e68-c422-3cfc-b1ea-b58b6d8dfad0",
		},
		{
			name:  "sha1 with dns namespace",
			gen:   NewNameSHA1Generator(WithNamespace(NamespaceDNS)),
			input: "www.github.com",
			want:  "04e16ed4-cd93-55f3-b2e3-1a097fc19832",
		},
		{
			name:  "sha1 without namespace",
			gen:   NewNameSHA1Generator(),
			input: "www.github.com",
			want:  "a2999f4b-523d-5e63-866a-d0d9f401fe93",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gen.NewString(tt.input).String(); got != tt.want {
				t.Errorf("NewString(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameGenerator_Deterministic(t *testing.T) {
	gen := NewNameSHA1Generator(WithNamespace(NamespaceURL))

	first := gen.NewString("https://example.com/a")
	second := gen.NewString("https://example.com/a")
	if first != second {
		t.Errorf("same name produced %s and %s", first, second)
	}

	if other := gen.NewString("https://example.com/b"); first == other {
		t.Errorf("distinct names both produced %s", first)
	}
}

func TestNameGenerator_NamespaceMatters(t *testing.T) {
	dns := NewNameMD5Generator(WithNamespace(NamespaceDNS))
	url := NewNameMD5Generator(WithNamespace(NamespaceURL))

	a := dns.NewString("example.com")
	b := url.NewString("example.com")
	if a == b {
		t.Errorf("different namespaces both produced %s", a)
	}
}

func TestNameGenerator_VersionAndVariant(t *testing.T) {
	md5gen := NewNameMD5Generator()
	sha1gen := NewNameSHA1Generator()

	for i := 0; i < 100; i++ {
		name := string(rune('a'+i%26)) + string(rune('0'+i%10))

		u3 := md5gen.NewString(name)
		if u3.Version() != VersionNameBasedMD5 {
			t.Fatalf("md5 version = %v, want %v", u3.Version(), VersionNameBasedMD5)
		}
		if u3.Variant() != VariantRFC4122 {
			t.Fatalf("md5 variant = %v, want %v", u3.Variant(), VariantRFC4122)
		}

		u5 := sha1gen.NewString(name)
		if u5.Version() != VersionNameBasedSHA1 {
			t.Fatalf("sha1 version = %v, want %v", u5.Version(), VersionNameBasedSHA1)
		}
		if u5.Variant() != VariantRFC4122 {
			t.Fatalf("sha1 variant = %v, want %v", u5.Variant(), VariantRFC4122)
		}
	}
}

func TestNameGenerator_ByteNames(t *testing.T) {
	gen := NewNameSHA1Generator(WithNamespace(NamespaceOID))

	fromBytes := gen.New([]byte("1.3.6.1"))
	fromString := gen.NewString("1.3.6.1")
	if fromBytes != fromString {
		t.Errorf("New(bytes) = %s, NewString = %s", fromBytes, fromString)
	}
}
