// Package keys handles ed25519 key material for feed publishing: raw-byte
// validation, author ref derivation, detached signing, and the legacy
// multisig text rendering of signatures.
//
// Key material is caller-owned. A Keypair lives for the duration of one
// publish call; nothing here caches or persists keys.
package keys
