package ssbpub

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_MessageAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := wrapError(KindLegacyEncodeFailed, "encoding failed", cause)
	if got := err.Error(); got != "encoding failed: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}

	bare := newError(KindInvalidPublicKey, "invalid public key")
	if got := bare.Error(); got != "invalid public key" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestIsKind(t *testing.T) {
	err := newError(KindPreviousAuthorMismatch, "author mismatch")
	if !IsKind(err, KindPreviousAuthorMismatch) {
		t.Fatal("IsKind should match the error's kind")
	}
	if IsKind(err, KindInvalidSecretKey) {
		t.Fatal("IsKind should not match a different kind")
	}
	if IsKind(errors.New("plain"), KindInvalidSecretKey) {
		t.Fatal("IsKind should not match unstructured errors")
	}
	if IsKind(nil, KindInvalidSecretKey) {
		t.Fatal("IsKind(nil) should be false")
	}

	// A wrapped *Error is still matchable.
	wrapped := fmt.Errorf("outer: %w", err)
	if !IsKind(wrapped, KindPreviousAuthorMismatch) {
		t.Fatal("IsKind should see through wrapping")
	}
}

func TestError_BytesCarriesInput(t *testing.T) {
	raw := []byte("{not json")
	_, err := decodePrevious(raw)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if e.Kind != KindInvalidPreviousMessage {
		t.Fatalf("Kind = %s, want %s", e.Kind, KindInvalidPreviousMessage)
	}
	if string(e.Bytes) != string(raw) {
		t.Fatalf("Bytes = %q, want %q", e.Bytes, raw)
	}
}
