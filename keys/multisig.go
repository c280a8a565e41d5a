package keys

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// sigSuffix tags the signature with its algorithm, mirroring the
// ".ed25519" and ".sha256" suffixes on feed and message refs.
const sigSuffix = ".sig.ed25519"

// EncodeSignature renders raw ed25519 signature bytes in the legacy
// multisig text form: standard base64 followed by ".sig.ed25519".
func EncodeSignature(sig []byte) string {
	return base64.StdEncoding.EncodeToString(sig) + sigSuffix
}

// DecodeSignature parses the multisig text form back to raw bytes.
func DecodeSignature(s string) ([]byte, error) {
	b64, ok := strings.CutSuffix(s, sigSuffix)
	if !ok {
		return nil, fmt.Errorf("signature %q is not an ed25519 multisig", s)
	}
	sig, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("invalid signature encoding: %w", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return nil, errors.New("invalid signature length")
	}
	return sig, nil
}
