package mcwire

// Type is the capability every wire value supports: serialize to a fresh
// byte slice, and report the serialized size. For any Type t,
// t.Size() == int32(len(t.Bytes())); Size is bookkeeping over the same
// stored bytes, never a second computation that could drift.
type Type interface {
	// Bytes returns the wire encoding in a freshly allocated slice.
	Bytes() []byte
	// Size returns the wire encoding's length in bytes.
	Size() int32
}

var (
	_ Type = VarInt{}
	_ Type = String{}
)
