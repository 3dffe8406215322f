package jwt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tokenforge/jwt/internal/encoding"
)

// Header parameter names recognized by this codec (RFC 7515 section
// 4.1). A validated header carries no names besides these two.
const (
	HeaderAlgorithm = "alg"
	HeaderType      = "typ"

	// HeaderTypeValue is the fixed type marker for this token format.
	HeaderTypeValue = "JWT"
)

// Header is a decoded, untrusted JOSE header. Values are the raw JSON
// values; ValidateHeader enforces that the recognized fields are strings.
type Header map[string]any

// CreateHeader builds the unpadded base64url encoding of the
// single-field header {"alg": algorithm}. The algorithm is validated
// first; nothing is emitted for an identifier outside the allow-list.
func CreateHeader(algorithm string) (string, error) {
	alg, err := ValidateAlgorithm(algorithm)
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(Header{HeaderAlgorithm: string(alg)})
	if err != nil {
		return "", &FormatError{Part: "header", Message: "failed to marshal header", Err: err}
	}

	return encoding.EncodeSegment(raw), nil
}

// DecodeHeader decodes and parses an untrusted header segment. The
// segment must be unpadded base64url, its bytes valid UTF-8, and the
// parsed value a single JSON object with no trailing content. Every
// failure mode collapses to a header FormatError.
func DecodeHeader(encoded string) (Header, error) {
	obj, err := encoding.DecodeObject(encoded)
	if err != nil {
		return nil, &FormatError{Part: "header", Err: err}
	}
	return Header(obj), nil
}

// ValidateHeader checks a decoded header against the algorithm the
// caller expects for its key material. expectedAlgorithm is validated
// first, so an unlisted value there surfaces as an *AlgorithmError (a
// caller bug) rather than a token fault.
//
// The header must carry alg equal to expectedAlgorithm byte-for-byte:
// the caller dictates the acceptable algorithm, and a token asserting
// any other one is rejected even when that algorithm is itself on the
// allow-list. typ, if present, must equal "JWT" ignoring case; its
// absence is not an error. Any other field name invalidates the header
// regardless of value.
func ValidateHeader(expectedAlgorithm string, header Header) error {
	expected, err := ValidateAlgorithm(expectedAlgorithm)
	if err != nil {
		return err
	}

	if _, ok := header[HeaderAlgorithm]; !ok {
		return &FormatError{Part: "header", Message: "missing algorithm"}
	}

	for name := range header {
		switch name {
		case HeaderAlgorithm:
			alg, err := stringField(header, HeaderAlgorithm)
			if err != nil {
				return err
			}
			if alg != string(expected) {
				return &FormatError{
					Part:    "header",
					Message: fmt.Sprintf("invalid algorithm; expected %s, got %s", expected, alg),
				}
			}
		case HeaderType:
			typ, err := stringField(header, HeaderType)
			if err != nil {
				return err
			}
			if strings.ToUpper(typ) != HeaderTypeValue {
				return &FormatError{
					Part:    "header",
					Message: fmt.Sprintf("invalid header type; expected %s, got %s", HeaderTypeValue, typ),
				}
			}
		default:
			return &FormatError{
				Part:    "header",
				Message: fmt.Sprintf("unexpected header field %s", name),
			}
		}
	}

	return nil
}

func stringField(header Header, name string) (string, error) {
	value, ok := header[name]
	if !ok {
		return "", &FormatError{Part: "header", Message: fmt.Sprintf("header %s does not exist", name)}
	}
	s, ok := value.(string)
	if !ok {
		return "", &FormatError{Part: "header", Message: fmt.Sprintf("header %s is not a string", name)}
	}
	return s, nil
}
