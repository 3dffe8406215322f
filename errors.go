package jwt

import (
	"errors"
	"fmt"
)

// Predefined errors for compact token disassembly
var (
	ErrEmptyToken         = errors.New("empty token")
	ErrTokenTooLarge      = errors.New("token too large: maximum 8192 characters allowed")
	ErrInvalidTokenFormat = errors.New("invalid token format: expected header.payload.signature")
)

// AlgorithmError reports an algorithm identifier outside the fixed
// allow-list. It is a caller configuration fault, not a malformed-token
// signal: surface it immediately rather than retrying.
type AlgorithmError struct {
	Algorithm string // The rejected identifier, exactly as supplied
}

func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("invalid algorithm: %s", e.Algorithm)
}

// FormatError reports a structurally invalid part of an untrusted token.
// Every FormatError is terminal for the parse attempt; callers must
// reject the token. Messages never contain decoded secret material.
type FormatError struct {
	Part    string // Token part that failed: "header", "payload", "signature" or "text"
	Message string // Human-readable diagnosis
	Err     error  // Underlying decode error, if any
}

func (e *FormatError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("invalid %s: %s: %v", e.Part, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("invalid %s: %v", e.Part, e.Err)
	default:
		return fmt.Sprintf("invalid %s: %s", e.Part, e.Message)
	}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
