package ssbpub

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may
// evolve. Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindInvalidPreviousMessage: the previous-entry bytes do not parse
	// as a well-formed message value. Error.Bytes carries the input.
	KindInvalidPreviousMessage Kind = "InvalidPreviousMessage"
	// KindInvalidPublicKey: public key bytes are the wrong length or
	// otherwise unusable.
	KindInvalidPublicKey Kind = "InvalidPublicKey"
	// KindInvalidSecretKey: secret key bytes are malformed or do not
	// correspond to the public key.
	KindInvalidSecretKey Kind = "InvalidSecretKey"
	// KindPreviousAuthorMismatch: the previous entry belongs to a
	// different feed than the supplied public key. Never repaired.
	KindPreviousAuthorMismatch Kind = "PreviousMessageAuthorIsIncorrect"
	// KindLegacyEncodeFailed: content, timestamp, or the assembled
	// envelope cannot be carried by the legacy encoding.
	KindLegacyEncodeFailed Kind = "LegacyJsonEncodeFailed"
)

// Error is the library's structured error type.
//
// Every failure is a caller-input problem, surfaced synchronously with
// no partial output; there are no transient conditions and nothing is
// retried.
type Error struct {
	Kind    Kind
	Message string
	Bytes   []byte // offending previous-entry bytes, when applicable
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind Kind, msg string, cause error) error {
	if cause == nil {
		return newError(kind, msg)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
