package ssbpub

// SigningStrategy selects how the signature field appears in the bytes
// being signed. Historical implementations diverged here; the two
// observed variants are both named so the choice is explicit and tested.
type SigningStrategy int

const (
	// SignatureOmitted signs the envelope with the signature field left
	// out entirely. This is the strategy the legacy verifier ecosystem
	// expects; it is the zero value and the default.
	SignatureOmitted SigningStrategy = iota
	// SignatureZeroed signs the envelope with the signature field
	// present as JSON null. Entries signed this way do not verify
	// against legacy verifiers. Provided for the divergent historical
	// variant only.
	SignatureZeroed
)

// OutputShape selects the outward representation of a published entry.
type OutputShape int

const (
	// ShapeValue emits the signed message value bytes. Zero value.
	ShapeValue OutputShape = iota
	// ShapeKeyValue wraps the value with its identifier:
	//
	//	{"key": "%...sha256", "value": {...}}
	//
	// The identifier is always derived from the unwrapped value bytes.
	ShapeKeyValue
)

// Options controls publish behavior. The zero value is the
// legacy-compatible configuration.
type Options struct {
	Strategy SigningStrategy
	Shape    OutputShape
}
