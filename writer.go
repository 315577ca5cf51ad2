package mcwire

import (
	"math"

	"github.com/unkn0wn-root/mcwire/internal/wire"
)

// Writer accumulates encoded protocol fields in an append buffer, the
// counterpart of Reader. The zero value is ready to use.
//
// A Writer is owned by a single goroutine.
type Writer struct {
	buf []byte
}

// WriteVarInt appends the minimal VarInt encoding of v.
func (w *Writer) WriteVarInt(v int32) {
	w.buf = wire.AppendVarInt(w.buf, v)
}

// WriteString appends a length-prefixed string. It fails with a
// *RangeError if the UTF-8 byte length of s does not fit a signed 32-bit
// integer, leaving the buffer untouched.
func (w *Writer) WriteString(s string) error {
	if len(s) > math.MaxInt32 {
		return &RangeError{Len: len(s)}
	}
	w.buf = wire.AppendString(w.buf, s)
	return nil
}

// WriteType appends any wire value.
func (w *Writer) WriteType(t Type) {
	w.buf = append(w.buf, t.Bytes()...)
}

// Bytes returns the accumulated buffer. The slice is owned by the Writer;
// it is valid until the next Write or Reset.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes accumulated.
func (w *Writer) Len() int { return len(w.buf) }

// Reset discards the accumulated bytes, keeping the allocation.
func (w *Writer) Reset() { w.buf = w.buf[:0] }
