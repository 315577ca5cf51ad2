package mcwire

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/mcwire/internal/wire"
)

var (
	// ErrMalformed reports a VarInt whose continuation chain runs past the
	// five-byte maximum. It marks a protocol violation, not a transient
	// condition: the peer is speaking something other than this format.
	ErrMalformed = wire.ErrMalformed

	// ErrShort reports a buffer that ends in the middle of a value, either
	// inside a continuation chain or before a string's announced content.
	ErrShort = wire.ErrShort

	// ErrTooLarge reports a string length prefix above the Reader's
	// configured MaxStringBytes.
	ErrTooLarge = errors.New("mcwire: string length over limit")
)

// RangeError reports a string whose UTF-8 byte length does not fit a signed
// 32-bit integer. It is raised at construction time, before any encoding.
type RangeError struct {
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("mcwire: string length %d overflows int32", e.Len)
}
