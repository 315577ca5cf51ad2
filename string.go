package mcwire

import (
	"math"

	"github.com/unkn0wn-root/mcwire/internal/wire"
)

// String is a length-prefixed UTF-8 string: a VarInt holding the content's
// byte length (bytes, not runes), immediately followed by the raw content
// with no terminator or padding. Immutable once constructed; the prefix is
// always derived from the content, never supplied independently.
//
// The zero value is NOT a valid wire value. Construct with NewString or
// ParseString.
type String struct {
	length  VarInt
	content string
}

// NewString builds a String from s. It fails with a *RangeError if the
// UTF-8 byte length of s does not fit a signed 32-bit integer.
func NewString(s string) (String, error) {
	if len(s) > math.MaxInt32 {
		return String{}, &RangeError{Len: len(s)}
	}
	return String{length: NewVarInt(int32(len(s))), content: s}, nil
}

// ParseString decodes a length-prefixed string off the head of b and
// reports how many bytes it consumed (prefix plus content). Trailing bytes
// beyond the announced content are neither consumed nor retained. Fails
// with ErrMalformed or ErrShort.
func ParseString(b []byte) (String, int, error) {
	s, n, err := wire.DecodeString(b)
	if err != nil {
		return String{}, 0, err
	}
	return String{length: NewVarInt(int32(len(s))), content: s}, n, nil
}

// Text returns the string content.
func (s String) Text() string { return s.content }

// Len returns the byte count of the length prefix alone.
func (s String) Len() int32 { return s.length.Len() }

// Bytes returns the length prefix followed by the raw UTF-8 content, in a
// freshly allocated slice.
func (s String) Bytes() []byte {
	out := make([]byte, 0, int(s.length.Len())+len(s.content))
	out = append(out, s.length.raw...)
	return append(out, s.content...)
}

// Size returns prefix byte count plus content byte count; always equal to
// len(Bytes()).
func (s String) Size() int32 {
	return s.length.Len() + int32(len(s.content))
}
