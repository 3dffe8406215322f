// Package encoding implements the base64url segment codec shared by the
// compact-format operations, with hardening limits on untrusted input.
package encoding

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	// maxSegmentLength bounds a single encoded segment accepted from
	// untrusted input.
	maxSegmentLength = 4096

	// maxObjectLength bounds the decoded bytes of a JSON-bearing segment.
	maxObjectLength = 2048
)

var (
	ErrInvalidUTF8 = errors.New("segment bytes are not valid UTF-8")
)

// EncodeSegment returns the unpadded base64url encoding of data
// (RFC 4648 section 5).
func EncodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeSegment decodes an unpadded base64url segment. Characters
// outside the URL-safe alphabet, padding included, are rejected before
// decoding. The empty segment decodes to zero bytes.
func DecodeSegment(segment string) ([]byte, error) {
	if len(segment) > maxSegmentLength {
		return nil, fmt.Errorf("segment too large: maximum %d characters allowed", maxSegmentLength)
	}

	if !isValidBase64URL(segment) {
		return nil, errors.New("invalid base64url character in segment")
	}

	buf := make([]byte, base64.RawURLEncoding.DecodedLen(len(segment)))

	n, err := base64.RawURLEncoding.Decode(buf, []byte(segment))
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64url: %w", err)
	}

	return buf[:n], nil
}

// isValidBase64URL checks if string contains only valid base64url characters
func isValidBase64URL(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-' || c == '_') {
			return false
		}
	}
	return true
}

// DecodeObject decodes a segment that must hold a single JSON object.
// Parsing is strict: the decoded bytes must be valid UTF-8, the
// top-level value must be an object, and nothing may follow it.
func DecodeObject(segment string) (map[string]any, error) {
	raw, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}

	if len(raw) > maxObjectLength {
		return nil, fmt.Errorf("decoded segment too large: maximum %d bytes allowed", maxObjectLength)
	}

	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to parse JSON object: %w", err)
	}
	if obj == nil {
		return nil, errors.New("top-level JSON value is not an object")
	}

	// A second token means trailing content after the object.
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing content after JSON object")
	}

	return obj, nil
}
