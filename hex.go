package objectid

import (
	"encoding/binary"
	"encoding/hex"
)

const (
	// rawLen is the size of the binary representation in bytes.
	rawLen = 12
	// encodedLen is the size of any hex representation in characters.
	encodedLen = 24
)

// IsValid reports whether `s` could be an encoded ObjectID: exactly 24
// characters, all ASCII hex digits in either case. It gates every string
// decoding entry point.
func IsValid(s string) bool {
	if len(s) != encodedLen {
		return false
	}
	for i := 0; i < encodedLen; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// FromHex decodes a canonical-form hex string, accepting hex digits in
// either case. It returns a *FormatError if IsValid(s) is false.
func FromHex(s string) (ObjectID, error) {
	if !IsValid(s) {
		return ObjectID{}, &FormatError{Input: s, Reason: "invalid hex string"}
	}
	var b [rawLen]byte
	// cannot fail after IsValid
	hex.Decode(b[:], []byte(s))
	return ObjectID{
		time:    binary.BigEndian.Uint32(b[0:4]),
		machine: binary.BigEndian.Uint32(b[4:8]),
		counter: binary.BigEndian.Uint32(b[8:12]),
	}, nil
}

// FromLegacyHex decodes a legacy-form hex string by undoing the byte-group
// reordering and then decoding as canonical. It returns a *FormatError if
// IsValid(s) is false.
func FromLegacyHex(s string) (ObjectID, error) {
	if !IsValid(s) {
		return ObjectID{}, &FormatError{Input: s, Reason: "invalid legacy hex string"}
	}
	return FromHex(reorderHex(s))
}

// ToHex returns the canonical form: 24 lowercase hex characters, the hex
// encoding of the raw big-endian bytes.
func (id ObjectID) ToHex() string {
	b := id.ToBytes()
	return hex.EncodeToString(b[:])
}

// ToLegacyHex returns the legacy reordered form, lowercase. It exists for
// interoperability with an older textual convention and is otherwise
// equivalent to the canonical form.
func (id ObjectID) ToLegacyHex() string {
	return reorderHex(id.ToHex())
}

// legacyOrder maps output byte-group positions to canonical byte-group
// positions: the first 8 bytes are reversed as one unit and the last 4
// bytes as another. The permutation is its own inverse.
var legacyOrder = [rawLen]int{7, 6, 5, 4, 3, 2, 1, 0, 11, 10, 9, 8}

// reorderHex applies the legacy byte-group permutation to a valid
// 24-character hex string. Applying it twice returns the original string.
func reorderHex(s string) string {
	var out [encodedLen]byte
	for i, g := range legacyOrder {
		out[i*2] = s[g*2]
		out[i*2+1] = s[g*2+1]
	}
	return string(out[:])
}
