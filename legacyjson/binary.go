package legacyjson

import "unicode/utf16"

// BinaryBytes converts encoded text to the byte form message identifiers
// are hashed over.
//
// The legacy stack hashed messages through a platform string-to-buffer
// conversion that reads the text as UTF-16 code units and keeps the low
// byte of each unit, in order. Characters outside Latin-1 are truncated.
// That truncation is wire format and must be reproduced exactly; hashing
// the UTF-8 bytes instead yields a different, non-interoperable
// identifier.
func BinaryBytes(text string) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return out
}
