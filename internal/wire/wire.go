package wire

import (
	"errors"
	"fmt"
)

const (
	segmentBits = 0x7F
	continueBit = 0x80

	// MaxVarIntLen is the largest encoded size of a VarInt. Five 7-bit
	// segments cover all 32 value bits.
	MaxVarIntLen = 5
)

var (
	ErrMalformed = errors.New("mcwire: malformed varint")
	ErrShort     = errors.New("mcwire: short buffer")
)

// AppendVarInt appends the minimal VarInt encoding of v to dst and returns
// the extended slice. Segments are emitted least significant first, seven
// bits per byte, with the high bit flagging continuation. All shifting
// happens on the unsigned reinterpretation of v, so negative values keep
// their two's-complement pattern and always take the full five bytes.
func AppendVarInt(dst []byte, v int32) []byte {
	u := uint32(v)
	for u >= continueBit {
		dst = append(dst, byte(u)|continueBit)
		u >>= 7
	}
	return append(dst, byte(u))
}

// VarIntLen reports the encoded size of v in bytes, in [1,MaxVarIntLen],
// without encoding.
func VarIntLen(v int32) int {
	n := 1
	for u := uint32(v); u >= continueBit; u >>= 7 {
		n++
	}
	return n
}

// DecodeVarInt decodes a VarInt off the head of b and reports how many
// bytes it consumed. b may be a slice of a larger packet; decoding stops at
// the first byte with the continuation bit clear and ignores anything after
// it. A continuation chain running to 32 value bits fails with
// ErrMalformed; a buffer that ends while the continuation bit is still set
// fails with ErrShort.
func DecodeVarInt(b []byte) (int32, int, error) {
	var u uint32
	shift := 0
	for i, c := range b {
		u |= uint32(c&segmentBits) << shift
		if c&continueBit == 0 {
			return int32(u), i + 1, nil
		}
		shift += 7
		if shift >= 32 {
			return 0, 0, ErrMalformed
		}
	}
	return 0, 0, ErrShort
}

// AppendString appends the VarInt byte-length prefix of s followed by its
// raw UTF-8 bytes. The caller guarantees len(s) fits an int32.
func AppendString(dst []byte, s string) []byte {
	dst = AppendVarInt(dst, int32(len(s)))
	return append(dst, s...)
}

// DecodeString decodes a length-prefixed string off the head of b,
// returning the content and the total bytes consumed (prefix plus content).
// The prefix counts bytes, not runes. A negative prefix is malformed; a
// prefix promising more bytes than b holds fails with ErrShort.
func DecodeString(b []byte) (string, int, error) {
	size, n, err := DecodeVarInt(b)
	if err != nil {
		return "", 0, err
	}
	if size < 0 {
		return "", 0, fmt.Errorf("%w: negative string length %d", ErrMalformed, size)
	}
	if int(size) > len(b)-n {
		return "", 0, fmt.Errorf("%w: string wants %d bytes, %d available", ErrShort, size, len(b)-n)
	}
	end := n + int(size)
	return string(b[n:end]), end, nil
}
