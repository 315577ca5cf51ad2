package mcwire

import "github.com/unkn0wn-root/mcwire/internal/wire"

// MaxVarIntLen is the largest encoded size of a VarInt, in bytes.
const MaxVarIntLen = wire.MaxVarIntLen

// VarInt is a variable-width encoding of a signed 32-bit integer, between
// one and five bytes on the wire. It is a carrier for protocol I/O, not an
// arithmetic type: it pairs the integer with its minimal wire bytes and the
// two only ever change together.
//
// The zero value is NOT a valid wire value. Construct with NewVarInt or
// ParseVarInt.
type VarInt struct {
	raw []byte
	val int32
}

// NewVarInt encodes v.
func NewVarInt(v int32) VarInt {
	return VarInt{raw: wire.AppendVarInt(make([]byte, 0, wire.MaxVarIntLen), v), val: v}
}

// ParseVarInt decodes a VarInt off the head of b and reports how many bytes
// it consumed. b may extend past the encoded value (a slice of a larger
// packet); trailing bytes are neither consumed nor retained, so Bytes and
// Size on the result reflect exactly the minimal encoding. Fails with
// ErrMalformed or ErrShort.
func ParseVarInt(b []byte) (VarInt, int, error) {
	v, n, err := wire.DecodeVarInt(b)
	if err != nil {
		return VarInt{}, 0, err
	}
	raw := make([]byte, n)
	copy(raw, b[:n])
	return VarInt{raw: raw, val: v}, n, nil
}

// Value returns the integer this VarInt encodes.
func (v VarInt) Value() int32 { return v.val }

// Len returns the encoded size in bytes, in [1,MaxVarIntLen].
func (v VarInt) Len() int32 { return int32(len(v.raw)) }

// Bytes returns a fresh copy of the encoded bytes.
func (v VarInt) Bytes() []byte {
	out := make([]byte, len(v.raw))
	copy(out, v.raw)
	return out
}

// Size returns the encoded size in bytes.
func (v VarInt) Size() int32 { return int32(len(v.raw)) }

// Set re-derives the VarInt for x, replacing value and bytes together;
// equivalent to assigning NewVarInt(x) over the receiver. An instance being
// mutated must not be read concurrently.
func (v *VarInt) Set(x int32) {
	*v = NewVarInt(x)
}
