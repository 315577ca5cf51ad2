package mcwire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func mustNewString(t *testing.T, s string) String {
	t.Helper()
	ms, err := NewString(s)
	if err != nil {
		t.Fatalf("NewString(%q) error: %v", s, err)
	}
	return ms
}

func TestStringHelloVector(t *testing.T) {
	ms := mustNewString(t, "Hello!")
	want := []byte{0x06, 0x48, 0x65, 0x6C, 0x6C, 0x6F, 0x21}
	if !bytes.Equal(ms.Bytes(), want) {
		t.Fatalf("Bytes() = %#x, want %#x", ms.Bytes(), want)
	}
	if ms.Size() != 7 {
		t.Fatalf("Size() = %d, want 7", ms.Size())
	}
	if ms.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (single prefix byte)", ms.Len())
	}
	if ms.Text() != "Hello!" {
		t.Fatalf("Text() = %q", ms.Text())
	}
}

func TestStringEmpty(t *testing.T) {
	ms := mustNewString(t, "")
	if !bytes.Equal(ms.Bytes(), []byte{0x00}) {
		t.Fatalf("Bytes() = %#x, want [0x00]", ms.Bytes())
	}
	if ms.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", ms.Size())
	}
}

func TestStringPrefixCountsBytesNotRunes(t *testing.T) {
	ms := mustNewString(t, "日本語") // 3 runes, 9 bytes
	enc := ms.Bytes()
	if enc[0] != 0x09 {
		t.Fatalf("prefix = %#x, want 0x09", enc[0])
	}
	if ms.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", ms.Size())
	}
}

func TestStringSizeMatchesBytes(t *testing.T) {
	for _, s := range []string{"", "a", "Hello!", "héllo", "日本語", string(make([]byte, 200))} {
		ms := mustNewString(t, s)
		if got, want := ms.Size(), int32(len(ms.Bytes())); got != want {
			t.Fatalf("NewString(%q): Size() = %d, len(Bytes()) = %d", s, got, want)
		}
	}
}

func TestStringTwoBytePrefix(t *testing.T) {
	// 200 content bytes push the prefix to two bytes
	ms := mustNewString(t, string(bytes.Repeat([]byte{'x'}, 200)))
	if ms.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ms.Len())
	}
	if ms.Size() != 202 {
		t.Fatalf("Size() = %d, want 202", ms.Size())
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, want := range []string{"", "Hello!", "héllo wörld", "日本語"} {
		enc := mustNewString(t, want).Bytes()
		ms, n, err := ParseString(enc)
		if err != nil {
			t.Fatalf("ParseString error: %v", err)
		}
		if ms.Text() != want || n != len(enc) {
			t.Fatalf("ParseString = (%q, %d), want (%q, %d)", ms.Text(), n, want, len(enc))
		}
	}
}

func TestParseStringIgnoresTrailingBytes(t *testing.T) {
	enc := append(mustNewString(t, "ab").Bytes(), 0x01, 0x02)
	ms, n, err := ParseString(enc)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	if ms.Text() != "ab" || n != 3 {
		t.Fatalf("got (%q, %d), want (\"ab\", 3)", ms.Text(), n)
	}
	if ms.Size() != 3 {
		t.Fatalf("Size() = %d after parse with trailing bytes, want 3", ms.Size())
	}
}

func TestParseStringTruncatedContent(t *testing.T) {
	if _, _, err := ParseString([]byte{0x05, 'a'}); !errors.Is(err, ErrShort) {
		t.Fatalf("err = %v, want ErrShort", err)
	}
}

func TestRangeErrorMessage(t *testing.T) {
	err := &RangeError{Len: math.MaxInt32}
	if err.Error() == "" {
		t.Fatal("empty error message")
	}
	var re *RangeError
	if !errors.As(error(err), &re) {
		t.Fatal("errors.As failed for *RangeError")
	}
}
