// Package legacyjson renders values in the legacy signing encoding: JSON
// with insertion key order, two-space indentation, ECMAScript number
// rendering, and ECMAScript string escaping. Signatures and message
// identifiers are computed over these bytes, so every rule here is wire
// format.
package legacyjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
)

// Marshal returns the compact legacy JSON encoding of v.
//
// Unlike json.Marshal, the output never escapes '<', '>' or '&'; the
// legacy stack's serializer leaves them literal and escaping them changes
// the signed bytes. The remaining places where json's output diverges
// from that serializer are rewritten afterwards, see canonicalize.
// Struct field order is preserved, which is how callers control key
// order inside content.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder terminates every value with a newline; the wire format has none.
	return canonicalize(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// canonicalize rewrites json.Encoder output into the legacy serializer's
// form: U+2028 and U+2029 are emitted literally, backspace and form feed
// use their short escapes, and the number token -0 renders as 0. Escape
// sequences are consumed pairwise, so literal source text such as
// `\u2028` (which json encodes as `\\u2028`) is left untouched.
func canonicalize(src []byte) []byte {
	out := make([]byte, 0, len(src))
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			switch {
			case c == '\\' && i+5 < len(src) && src[i+1] == 'u':
				switch string(src[i+2 : i+6]) {
				case "2028":
					out = append(out, "\u2028"...)
				case "2029":
					out = append(out, "\u2029"...)
				case "0008":
					out = append(out, '\\', 'b')
				case "000c":
					out = append(out, '\\', 'f')
				default:
					out = append(out, src[i:i+6]...)
				}
				i += 5
			case c == '\\':
				out = append(out, c, src[i+1])
				i++
			default:
				if c == '"' {
					inString = false
				}
				out = append(out, c)
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '-' && i+1 < len(src) && src[i+1] == '0' &&
			(i+2 == len(src) || src[i+2] == ',' || src[i+2] == '}' || src[i+2] == ']'):
			// Negative zero renders as "0", matching AppendFloat.
			out = append(out, '0')
			i++
		default:
			out = append(out, c)
		}
	}
	return out
}

// Indent reformats compact legacy JSON into the pretty-printed signing
// form: two-space indentation, a space after each colon, no trailing
// newline. Value formatting inside src is preserved byte for byte.
func Indent(compact []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ErrNonFinite is returned for numbers the legacy encoding cannot carry.
var ErrNonFinite = errors.New("non-finite number not representable in legacy JSON")

// AppendFloat appends the ECMAScript rendering of f to dst.
//
// Plain decimal notation for magnitudes in [1e-6, 1e21), exponent
// notation outside it, shortest round-trip digits. Negative zero renders
// as "0". NaN and infinities fail.
func AppendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNonFinite
	}
	if f == 0 {
		// ECMAScript renders negative zero as "0".
		f = 0
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}
