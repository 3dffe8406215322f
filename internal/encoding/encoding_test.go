package encoding

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSegmentRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("{}"),
		[]byte(`{"alg":"HS256"}`),
		{0x00, 0xff, 0x80, 0x7f},
		bytes.Repeat([]byte{0xde, 0xad}, 100),
	}

	for _, input := range inputs {
		encoded := EncodeSegment(input)
		if strings.ContainsAny(encoded, "+/=") {
			t.Errorf("EncodeSegment produced non-base64url output: %q", encoded)
		}

		decoded, err := DecodeSegment(encoded)
		if err != nil {
			t.Fatalf("DecodeSegment failed for %x: %v", input, err)
		}
		if !bytes.Equal(decoded, input) {
			t.Errorf("Round trip mismatch: expected %x, got %x", input, decoded)
		}
	}
}

func TestDecodeSegmentRejects(t *testing.T) {
	tests := []struct {
		name    string
		segment string
	}{
		{"plus character", "ab+c"},
		{"slash character", "ab/c"},
		{"padding", "e30="},
		{"whitespace", "e3 0"},
		{"newline", "e30\n"},
		{"dot", "e3.0"},
		{"impossible length", "A"},
		{"oversized", strings.Repeat("A", maxSegmentLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSegment(tt.segment); err == nil {
				t.Errorf("DecodeSegment(%q) should have failed", tt.segment)
			}
		})
	}
}

func TestDecodeSegmentEmpty(t *testing.T) {
	decoded, err := DecodeSegment("")
	if err != nil {
		t.Fatalf("DecodeSegment(\"\") failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("Expected zero bytes, got %x", decoded)
	}
}

func TestDecodeObject(t *testing.T) {
	obj, err := DecodeObject(EncodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`)))
	if err != nil {
		t.Fatalf("DecodeObject failed: %v", err)
	}
	if obj["alg"] != "HS256" || obj["typ"] != "JWT" {
		t.Errorf("Unexpected object contents: %v", obj)
	}

	// Non-string values survive decoding; typing is the caller's check.
	obj, err = DecodeObject(EncodeSegment([]byte(`{"alg":"HS256","nested":{"n":1}}`)))
	if err != nil {
		t.Fatalf("DecodeObject failed on nested value: %v", err)
	}
	if _, ok := obj["nested"].(map[string]any); !ok {
		t.Errorf("Expected nested object, got %T", obj["nested"])
	}
}

func TestDecodeObjectStrict(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty bytes", []byte{}},
		{"array top level", []byte(`["HS256"]`)},
		{"string top level", []byte(`"HS256"`)},
		{"number top level", []byte(`42`)},
		{"null top level", []byte(`null`)},
		{"truncated object", []byte(`{"alg":`)},
		{"trailing garbage", []byte(`{}trailing`)},
		{"second value", []byte(`{} {}`)},
		{"comment", []byte("{} // jwt")},
		{"unquoted key", []byte(`{alg:"HS256"}`)},
		{"invalid UTF-8", []byte{0x7b, 0xff, 0x7d}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeObject(EncodeSegment(tt.raw)); err == nil {
				t.Errorf("DecodeObject(%q) should have failed", tt.raw)
			}
		})
	}
}

func TestDecodeObjectInvalidUTF8Sentinel(t *testing.T) {
	_, err := DecodeObject(EncodeSegment([]byte{0xff, 0xfe}))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Expected ErrInvalidUTF8, got %v", err)
	}
}

func TestDecodeObjectDecodedSizeLimit(t *testing.T) {
	blob := bytes.Repeat([]byte("a"), maxObjectLength+10)

	_, err := DecodeObject(EncodeSegment(blob))
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("Expected decoded size limit error, got %v", err)
	}
}
