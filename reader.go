package mcwire

import (
	"fmt"

	"github.com/unkn0wn-root/mcwire/internal/wire"
)

// Options tune a Reader. All fields are optional.
type Options struct {
	// Logger receives a Warn entry for each malformed, truncated or
	// over-limit field before the error is returned. If nil, NopLogger is
	// used.
	Logger Logger

	// MaxStringBytes caps the content length a string prefix may announce.
	// A larger prefix fails with ErrTooLarge before any content is read.
	// Typical use: protect against a hostile peer announcing a huge string
	// to force an allocation. If <= 0, the limit is disabled.
	MaxStringBytes int32
}

// Reader decodes successive protocol fields off a byte buffer, the way a
// packet parser walks a packet body. It keeps an offset cursor; every
// successful read advances the cursor by exactly the bytes the field
// consumed, and a failed read leaves it untouched. Errors are surfaced to
// the caller, never retried or papered over.
//
// A Reader is owned by a single goroutine.
type Reader struct {
	buf    []byte
	off    int
	log    Logger
	maxStr int32
}

// NewReader returns a Reader over b. The buffer is not copied; the caller
// must not mutate it while reading.
func NewReader(b []byte, opts Options) *Reader {
	return &Reader{
		buf:    b,
		log:    coalesce[Logger](opts.Logger, NopLogger{}),
		maxStr: opts.MaxStringBytes,
	}
}

// ReadVarInt decodes the next field as a VarInt and returns its value.
func (r *Reader) ReadVarInt() (int32, error) {
	v, n, err := wire.DecodeVarInt(r.buf[r.off:])
	if err != nil {
		r.log.Warn("varint decode failed", Fields{"offset": r.off, "error": err.Error()})
		return 0, err
	}
	r.off += n
	return v, nil
}

// ReadString decodes the next field as a length-prefixed string and returns
// its content. The length prefix is validated against MaxStringBytes before
// any content is touched.
func (r *Reader) ReadString() (string, error) {
	rest := r.buf[r.off:]
	size, n, err := wire.DecodeVarInt(rest)
	if err != nil {
		r.log.Warn("string prefix decode failed", Fields{"offset": r.off, "error": err.Error()})
		return "", err
	}
	if size < 0 {
		r.log.Warn("negative string length", Fields{"offset": r.off, "length": size})
		return "", fmt.Errorf("%w: negative string length %d", ErrMalformed, size)
	}
	if r.maxStr > 0 && size > r.maxStr {
		r.log.Warn("string length over limit", Fields{"offset": r.off, "length": size, "limit": r.maxStr})
		return "", fmt.Errorf("%w: %d > %d", ErrTooLarge, size, r.maxStr)
	}
	if int(size) > len(rest)-n {
		r.log.Warn("string content truncated", Fields{"offset": r.off, "length": size, "available": len(rest) - n})
		return "", fmt.Errorf("%w: string wants %d bytes, %d available", ErrShort, size, len(rest)-n)
	}
	s := string(rest[n : n+int(size)])
	r.off += n + int(size)
	return s, nil
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }
