// Package validate checks published entries: detached signature
// verification against the entry's author, and hash-chain continuity
// between consecutive entries. The publish path never calls this
// package; it exists for hosts and for round-trip confirmation in
// tests.
package validate

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"

	refs "go.mindeco.de/ssb-refs"

	"scuttle.dev/ssbpub/keys"
	"scuttle.dev/ssbpub/ssbpub"
)

// wireValue decodes the fields validation needs from a message value.
type wireValue struct {
	Previous  *string `json:"previous"`
	Author    string  `json:"author"`
	Sequence  int64   `json:"sequence"`
	Timestamp float64 `json:"timestamp"`
	Hash      string  `json:"hash"`
	Signature string  `json:"signature"`
}

// VerifySignature checks the entry's detached signature against its
// author over the canonical bytes with the signature field absent.
//
// Entries signed under the historical zeroed-signature strategy do not
// pass; only the omitted-field strategy is verifiable here, matching
// the legacy verifier ecosystem.
func VerifySignature(raw []byte) error {
	var wire wireValue
	if err := json.Unmarshal(raw, &wire); err != nil {
		return fmt.Errorf("message value does not parse: %w", err)
	}
	author, err := refs.ParseFeedRef(wire.Author)
	if err != nil {
		return fmt.Errorf("invalid author ref: %w", err)
	}
	sig, err := keys.DecodeSignature(wire.Signature)
	if err != nil {
		return err
	}

	scope, err := signatureScope(raw)
	if err != nil {
		return err
	}
	if !ed25519.Verify(author.PubKey(), scope, sig) {
		return errors.New("signature did not verify")
	}
	return nil
}

// signatureScope strips the signature field from canonical value bytes,
// recovering exactly the bytes the signature covers. Requires canonical
// formatting as produced by the publish path.
func signatureScope(raw []byte) ([]byte, error) {
	if !bytes.HasSuffix(raw, []byte("\n}")) {
		return nil, errors.New("non-canonical message value")
	}
	marker := []byte(",\n  \"signature\":")
	idx := bytes.LastIndex(raw, marker)
	if idx < 0 {
		return nil, errors.New("missing signature field")
	}
	scope := append([]byte(nil), raw[:idx]...)
	return append(scope, '\n', '}'), nil
}

// CheckHashChain checks that current continues the feed ending in
// previous: the author is unchanged, the sequence increments by one,
// and current's previous field names previous's identifier. previous
// is nil for the first entry of a feed.
func CheckHashChain(current, previous []byte) error {
	var cur wireValue
	if err := json.Unmarshal(current, &cur); err != nil {
		return fmt.Errorf("message value does not parse: %w", err)
	}

	if previous == nil {
		if cur.Sequence != 1 {
			return fmt.Errorf("first entry must have sequence 1, got %d", cur.Sequence)
		}
		if cur.Previous != nil {
			return errors.New("first entry must have null previous")
		}
		return nil
	}

	var prev wireValue
	if err := json.Unmarshal(previous, &prev); err != nil {
		return fmt.Errorf("previous message value does not parse: %w", err)
	}
	if cur.Author != prev.Author {
		return errors.New("author changed mid-feed")
	}
	if cur.Sequence != prev.Sequence+1 {
		return fmt.Errorf("sequence %d does not continue %d", cur.Sequence, prev.Sequence)
	}

	prevID, err := ssbpub.MessageID(previous)
	if err != nil {
		return fmt.Errorf("previous message is not hashable: %w", err)
	}
	if cur.Previous == nil || *cur.Previous != prevID.Sigil() {
		return errors.New("previous field does not name the prior entry's identifier")
	}
	return nil
}
