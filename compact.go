package jwt

import (
	"unicode/utf8"

	"github.com/tokenforge/jwt/internal/encoding"
)

const maxTokenLength = 8192

// EncodePayload encodes an already-serialized JSON payload. The string
// is not parsed or validated here; well-formedness is the caller's
// responsibility.
func EncodePayload(jsonPayload string) string {
	return encoding.EncodeSegment([]byte(jsonPayload))
}

// DecodePayload decodes a payload segment back to its JSON text. The
// decoded bytes must be valid UTF-8; no JSON parsing occurs at this
// layer.
func DecodePayload(encoded string) (string, error) {
	raw, err := encoding.DecodeSegment(encoded)
	if err != nil {
		return "", &FormatError{Part: "payload", Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &FormatError{Part: "payload", Err: encoding.ErrInvalidUTF8}
	}
	return string(raw), nil
}

// EncodeSignature encodes raw signature bytes. The bytes are never
// inspected; verification is strictly the caller's concern.
func EncodeSignature(signature []byte) string {
	return encoding.EncodeSegment(signature)
}

// DecodeSignature decodes a signature segment to raw bytes.
func DecodeSignature(encoded string) ([]byte, error) {
	raw, err := encoding.DecodeSegment(encoded)
	if err != nil {
		return nil, &FormatError{Part: "signature", Err: err}
	}
	return raw, nil
}

// CreateUnsignedCompact builds the header.payload prefix of a compact
// token. It fails exactly when header creation fails; payload encoding
// cannot fail.
func CreateUnsignedCompact(algorithm, jsonPayload string) (string, error) {
	header, err := CreateHeader(algorithm)
	if err != nil {
		return "", err
	}
	return header + "." + EncodePayload(jsonPayload), nil
}

// CreateSignedCompact appends the encoded signature to an unsigned
// compact string. Pure concatenation; the unsigned compact is assumed
// well-formed, having come from CreateUnsignedCompact.
func CreateSignedCompact(unsignedCompact string, signature []byte) string {
	return unsignedCompact + "." + EncodeSignature(signature)
}

// SplitCompact splits a signed compact token into its three segments on
// the literal dots. Purely structural: segments may be empty and are
// not decoded. Tokens without exactly three segments are rejected, as
// are empty and oversized inputs.
func SplitCompact(token string) (header, payload, signature string, err error) {
	if len(token) == 0 {
		return "", "", "", ErrEmptyToken
	}
	if len(token) > maxTokenLength {
		return "", "", "", ErrTokenTooLarge
	}

	first := -1
	second := -1
	for i := 0; i < len(token); i++ {
		if token[i] != '.' {
			continue
		}
		switch {
		case first == -1:
			first = i
		case second == -1:
			second = i
		default:
			return "", "", "", ErrInvalidTokenFormat
		}
	}
	if second == -1 {
		return "", "", "", ErrInvalidTokenFormat
	}

	return token[:first], token[first+1 : second], token[second+1:], nil
}

// ValidateASCII rejects text containing any byte with the high bit set.
// Certain legacy consumers require header and claim text to stay within
// 7-bit ASCII.
func ValidateASCII(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i]&0x80 != 0 {
			return &FormatError{Part: "text", Message: "non-ASCII character"}
		}
	}
	return nil
}
