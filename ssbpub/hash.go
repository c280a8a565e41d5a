package ssbpub

import (
	"crypto/sha256"
	"errors"
	"unicode/utf8"

	refs "go.mindeco.de/ssb-refs"

	"scuttle.dev/ssbpub/legacyjson"
)

// MessageID derives the content identifier for one entry's canonical
// bytes (signature included).
//
// The digest is taken over the legacy binary transcoding of the text,
// not its UTF-8 bytes; see legacyjson.BinaryBytes. The two-step
// transcode-then-digest order is load-bearing for interoperability.
func MessageID(raw []byte) (refs.MessageRef, error) {
	if !utf8.Valid(raw) {
		return refs.MessageRef{}, errors.New("message bytes must be valid UTF-8")
	}
	sum := sha256.Sum256(legacyjson.BinaryBytes(string(raw)))
	return refs.NewMessageRefFromBytes(sum[:], refs.RefAlgoMessageSSB1)
}
