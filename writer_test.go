package mcwire

import (
	"bytes"
	"testing"
)

func TestWriterZeroValueReady(t *testing.T) {
	var w Writer
	if w.Len() != 0 || len(w.Bytes()) != 0 {
		t.Fatalf("fresh Writer not empty: len=%d", w.Len())
	}
	w.WriteVarInt(0)
	if !bytes.Equal(w.Bytes(), []byte{0x00}) {
		t.Fatalf("Bytes() = %#x, want [0x00]", w.Bytes())
	}
}

func TestWriterConcatenatesFields(t *testing.T) {
	var w Writer
	w.WriteVarInt(128)
	if err := w.WriteString("Hi"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	want := []byte{0x80, 0x01, 0x02, 'H', 'i'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("Bytes() = %#x, want %#x", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", w.Len(), len(want))
	}
}

func TestWriterWriteTypeMatchesDirectWrites(t *testing.T) {
	var direct, viaType Writer

	direct.WriteVarInt(25565)
	if err := direct.WriteString("Hello!"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	viaType.WriteType(NewVarInt(25565))
	ms, err := NewString("Hello!")
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	viaType.WriteType(ms)

	if !bytes.Equal(direct.Bytes(), viaType.Bytes()) {
		t.Fatalf("WriteType output %#x differs from direct writes %#x", viaType.Bytes(), direct.Bytes())
	}
}

func TestWriterReset(t *testing.T) {
	var w Writer
	w.WriteVarInt(1)
	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("Len() = %d after Reset, want 0", w.Len())
	}
	w.WriteVarInt(127)
	if !bytes.Equal(w.Bytes(), []byte{0x7F}) {
		t.Fatalf("Bytes() = %#x after Reset, want [0x7F]", w.Bytes())
	}
}
