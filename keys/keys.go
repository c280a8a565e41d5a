package keys

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	refs "go.mindeco.de/ssb-refs"
)

var (
	// ErrPublicKeySize rejects public keys that are not 32 raw bytes.
	ErrPublicKeySize = errors.New("public key must be 32 bytes")
	// ErrSecretKeySize rejects secret keys that are neither a 32-byte
	// seed nor a 64-byte expanded private key.
	ErrSecretKeySize = errors.New("secret key must be a 32-byte seed or a 64-byte private key")
	// ErrKeyMismatch rejects a secret key whose derived public key does
	// not match the supplied public key bytes.
	ErrKeyMismatch = errors.New("secret key does not correspond to public key")
)

// Keypair is validated ed25519 key material.
type Keypair struct {
	Public ed25519.PublicKey
	Secret ed25519.PrivateKey
}

// New validates raw key bytes and assembles a Keypair.
//
// The secret key may be either the 32-byte seed or the 64-byte expanded
// form (seed followed by public key). In both cases the public key
// derived from the secret must equal publicKey; a mismatched pair would
// otherwise sign entries that silently fail verification.
func New(publicKey, secretKey []byte) (Keypair, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return Keypair{}, ErrPublicKeySize
	}

	var secret ed25519.PrivateKey
	switch len(secretKey) {
	case ed25519.SeedSize:
		secret = ed25519.NewKeyFromSeed(secretKey)
	case ed25519.PrivateKeySize:
		secret = ed25519.PrivateKey(append([]byte(nil), secretKey...))
	default:
		return Keypair{}, ErrSecretKeySize
	}

	derived := secret.Public().(ed25519.PublicKey)
	if !bytes.Equal(derived, publicKey) {
		return Keypair{}, ErrKeyMismatch
	}

	return Keypair{
		Public: ed25519.PublicKey(append([]byte(nil), publicKey...)),
		Secret: secret,
	}, nil
}

// FromSeed derives a Keypair from a 32-byte seed.
func FromSeed(seed []byte) (Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return Keypair{}, ErrSecretKeySize
	}
	secret := ed25519.NewKeyFromSeed(seed)
	return Keypair{
		Public: secret.Public().(ed25519.PublicKey),
		Secret: secret,
	}, nil
}

// Generate returns a fresh random Keypair.
func Generate() (Keypair, error) {
	public, secret, err := ed25519.GenerateKey(nil)
	if err != nil {
		return Keypair{}, fmt.Errorf("generate ed25519 keypair: %w", err)
	}
	return Keypair{Public: public, Secret: secret}, nil
}

// Author returns the feed ref for the keypair's public key.
func (kp Keypair) Author() (refs.FeedRef, error) {
	return refs.NewFeedRefFromBytes(kp.Public, refs.RefAlgoFeedSSB1)
}

// Sign returns the multisig rendering of a detached signature over
// message. The signature covers exactly the given bytes; ed25519 does
// its own internal hashing and no pre-hash is applied.
func (kp Keypair) Sign(message []byte) string {
	return EncodeSignature(ed25519.Sign(kp.Secret, message))
}
