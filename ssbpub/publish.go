// Package ssbpub appends signed entries to per-identity, hash-chained,
// append-only feeds in the legacy JSON message format.
//
// The core operation is Publish: given opaque content, the previous
// entry's canonical bytes, an ed25519 keypair, and a timestamp, it
// assembles the next envelope, canonically encodes it, signs it, derives
// its content identifier, and returns the finished bytes plus
// identifier. Publish is a pure computation: no I/O, no shared state,
// and byte-identical output for identical inputs. Feed storage,
// replication, and key lifecycle belong to the host application.
package ssbpub

import (
	"errors"
	"math"

	refs "go.mindeco.de/ssb-refs"

	"scuttle.dev/ssbpub/keys"
	"scuttle.dev/ssbpub/legacyjson"
)

// Publish appends a new entry with the legacy-compatible defaults
// (signature field omitted while signing, flat value output).
//
// previous is the prior entry's canonical value bytes, or nil for the
// first entry in a feed. The secret key may be a 32-byte seed or the
// 64-byte expanded form. The timestamp is taken verbatim; callers decide
// wall clock versus synthetic values.
//
// Returns the canonical bytes of the signed entry and its identifier.
func Publish(content any, previous []byte, publicKey, secretKey []byte, timestamp float64) ([]byte, refs.MessageRef, error) {
	return PublishWith(content, previous, publicKey, secretKey, timestamp, Options{})
}

// PublishWith is Publish with explicit strategy and output shape.
func PublishWith(content any, previous []byte, publicKey, secretKey []byte, timestamp float64, opts Options) ([]byte, refs.MessageRef, error) {
	kp, err := keys.New(publicKey, secretKey)
	if err != nil {
		kind := KindInvalidSecretKey
		if errors.Is(err, keys.ErrPublicKeySize) {
			kind = KindInvalidPublicKey
		}
		return nil, refs.MessageRef{}, wrapError(kind, "invalid key material", err)
	}
	author, err := kp.Author()
	if err != nil {
		return nil, refs.MessageRef{}, wrapError(KindInvalidPublicKey, "public key is not a valid feed identity", err)
	}

	prev, err := decodePrevious(previous)
	if err != nil {
		return nil, refs.MessageRef{}, err
	}

	env, err := newEnvelope(prev, author, content, timestamp)
	if err != nil {
		return nil, refs.MessageRef{}, err
	}

	signable, err := env.signableBytes(opts.Strategy)
	if err != nil {
		return nil, refs.MessageRef{}, err
	}
	env.signature = kp.Sign(signable)

	value, err := env.encode(sigSigned)
	if err != nil {
		return nil, refs.MessageRef{}, err
	}

	key, err := MessageID(value)
	if err != nil {
		return nil, refs.MessageRef{}, wrapError(KindLegacyEncodeFailed, "deriving message identifier failed", err)
	}

	out := value
	if opts.Shape == ShapeKeyValue {
		out, err = wrapKeyValue(value, key)
		if err != nil {
			return nil, refs.MessageRef{}, err
		}
	}
	return out, key, nil
}

// newEnvelope links the new entry onto the feed and enforces the
// continuity invariants: sequence is previous+1 (1 for the first
// entry), previous references the prior entry's identifier, and the
// author is always derived from the supplied public key, never copied
// from the previous entry.
func newEnvelope(prev *previousView, author refs.FeedRef, content any, timestamp float64) (*envelope, error) {
	if math.IsNaN(timestamp) || math.IsInf(timestamp, 0) {
		return nil, newError(KindLegacyEncodeFailed, "timestamp must be a finite number")
	}

	env := &envelope{
		author:    author,
		sequence:  1,
		timestamp: timestamp,
		content:   content,
	}
	if prev != nil {
		if prev.author.Sigil() != author.Sigil() {
			return nil, newError(KindPreviousAuthorMismatch, "previous message author is not the publishing identity")
		}
		key := prev.key
		env.previous = &key
		env.sequence = prev.sequence + 1
	}
	return env, nil
}

// wrapKeyValue emits the {key, value} deployment shape. The identifier
// keys the unwrapped value bytes; wrapping never changes what was
// signed or hashed.
func wrapKeyValue(value []byte, key refs.MessageRef) ([]byte, error) {
	keyJSON, err := legacyjson.Marshal(key.Sigil())
	if err != nil {
		return nil, wrapError(KindLegacyEncodeFailed, "encoding message key failed", err)
	}

	buf := make([]byte, 0, len(value)+len(keyJSON)+32)
	buf = append(buf, `{"key":`...)
	buf = append(buf, keyJSON...)
	buf = append(buf, `,"value":`...)
	buf = append(buf, value...)
	buf = append(buf, '}')

	out, err := legacyjson.Indent(buf)
	if err != nil {
		return nil, wrapError(KindLegacyEncodeFailed, "indenting wrapped message failed", err)
	}
	return out, nil
}
