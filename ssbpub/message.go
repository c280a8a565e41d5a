package ssbpub

import (
	"strconv"

	refs "go.mindeco.de/ssb-refs"

	"scuttle.dev/ssbpub/legacyjson"
)

// hashAlgo is the only value the legacy hash field ever carried.
const hashAlgo = "sha256"

// Encrypted is private-box content: an opaque base64 blob ending in
// ".box". Producing the blob is the caller's concern; on the wire it is
// a bare JSON string in place of the usual content object.
type Encrypted string

// sigPresence is how the signature field appears in one encoding pass.
type sigPresence int

const (
	sigAbsent sigPresence = iota
	sigNull
	sigSigned
)

// envelope is one feed entry in wire key order: previous, author,
// sequence, timestamp, hash, content, signature.
type envelope struct {
	previous  *refs.MessageRef
	author    refs.FeedRef
	sequence  int64
	timestamp float64
	content   any
	signature string // multisig text; empty until signed
}

// encode produces the canonical bytes of the envelope. The signature
// field's presence is the only thing allowed to differ between the
// signable and final encodings; everything else must be byte-identical
// or no other implementation can verify the result.
func (e *envelope) encode(presence sigPresence) ([]byte, error) {
	buf := make([]byte, 0, 512)

	buf = append(buf, `{"previous":`...)
	if e.previous == nil {
		buf = append(buf, "null"...)
	} else {
		prev, err := legacyjson.Marshal(e.previous.Sigil())
		if err != nil {
			return nil, wrapError(KindLegacyEncodeFailed, "encoding previous ref failed", err)
		}
		buf = append(buf, prev...)
	}

	author, err := legacyjson.Marshal(e.author.Sigil())
	if err != nil {
		return nil, wrapError(KindLegacyEncodeFailed, "encoding author ref failed", err)
	}
	buf = append(buf, `,"author":`...)
	buf = append(buf, author...)

	buf = append(buf, `,"sequence":`...)
	buf = strconv.AppendInt(buf, e.sequence, 10)

	buf = append(buf, `,"timestamp":`...)
	buf, err = legacyjson.AppendFloat(buf, e.timestamp)
	if err != nil {
		return nil, wrapError(KindLegacyEncodeFailed, "timestamp is not representable in legacy JSON", err)
	}

	buf = append(buf, `,"hash":"`...)
	buf = append(buf, hashAlgo...)
	buf = append(buf, '"')

	content, err := legacyjson.Marshal(e.content)
	if err != nil {
		return nil, wrapError(KindLegacyEncodeFailed, "content is not encodable as legacy JSON", err)
	}
	buf = append(buf, `,"content":`...)
	buf = append(buf, content...)

	switch presence {
	case sigAbsent:
		// Field left out entirely.
	case sigNull:
		buf = append(buf, `,"signature":null`...)
	case sigSigned:
		sig, err := legacyjson.Marshal(e.signature)
		if err != nil {
			return nil, wrapError(KindLegacyEncodeFailed, "encoding signature failed", err)
		}
		buf = append(buf, `,"signature":`...)
		buf = append(buf, sig...)
	}
	buf = append(buf, '}')

	out, err := legacyjson.Indent(buf)
	if err != nil {
		return nil, wrapError(KindLegacyEncodeFailed, "indenting message value failed", err)
	}
	return out, nil
}

// signableBytes is the encoding the detached signature covers, per the
// configured strategy.
func (e *envelope) signableBytes(strategy SigningStrategy) ([]byte, error) {
	if strategy == SignatureZeroed {
		return e.encode(sigNull)
	}
	return e.encode(sigAbsent)
}
