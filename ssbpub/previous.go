package ssbpub

import (
	"encoding/json"

	refs "go.mindeco.de/ssb-refs"
)

// previousView is the minimal projection of the prior entry needed for
// chaining. It is decoded fresh per publish call and discarded after
// use; the identifier is recomputed from the raw bytes, never trusted
// from a side channel.
type previousView struct {
	key       refs.MessageRef
	author    refs.FeedRef
	sequence  int64
	timestamp float64
}

// previousWire decodes only the fields the chain needs. Decoding is
// order-insensitive, so entries with the historical swapped
// author/sequence order are accepted.
type previousWire struct {
	Previous  *string `json:"previous"`
	Author    string  `json:"author"`
	Sequence  int64   `json:"sequence"`
	Timestamp float64 `json:"timestamp"`
}

// decodePrevious resolves the caller-supplied previous-entry bytes.
// nil means the feed has no entries yet and yields a nil view.
func decodePrevious(raw []byte) (*previousView, error) {
	if raw == nil {
		return nil, nil
	}

	invalid := func(msg string, cause error) error {
		return &Error{
			Kind:    KindInvalidPreviousMessage,
			Message: msg,
			Bytes:   append([]byte(nil), raw...),
			Cause:   cause,
		}
	}

	var wire previousWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, invalid("previous message bytes do not parse as a message value", err)
	}
	author, err := refs.ParseFeedRef(wire.Author)
	if err != nil {
		return nil, invalid("previous message has no valid author ref", err)
	}
	if wire.Sequence < 1 {
		return nil, invalid("previous message has no valid sequence", nil)
	}

	key, err := MessageID(raw)
	if err != nil {
		return nil, invalid("previous message bytes are not hashable", err)
	}

	return &previousView{
		key:       key,
		author:    author,
		sequence:  wire.Sequence,
		timestamp: wire.Timestamp,
	}, nil
}
