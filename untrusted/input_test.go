package untrusted

import (
	"bytes"
	"errors"
	"testing"
)

func TestInputAccessors(t *testing.T) {
	raw := []byte{1, 2, 3}
	in := New(raw)
	if in.Len() != 3 {
		t.Errorf("Len: got %d, want 3", in.Len())
	}
	if in.IsEmpty() {
		t.Error("IsEmpty: got true for non-empty input")
	}
	if !bytes.Equal(in.AsSliceLessSafe(), raw) {
		t.Errorf("AsSliceLessSafe: got %x, want %x", in.AsSliceLessSafe(), raw)
	}
	if !New(nil).IsEmpty() {
		t.Error("IsEmpty: got false for nil input")
	}
}

func TestReaderBounds(t *testing.T) {
	_, err := Read(New([]byte{0x04, 0xaa, 0xbb}), func(r *Reader) (struct{}, error) {
		if !r.NextIs(0x04) {
			t.Fatal("NextIs: expected format byte 0x04")
		}
		if r.NextIs(0xaa) {
			t.Error("NextIs: matched a byte that is not next")
		}
		tag, err := r.ReadByte()
		if err != nil || tag != 0x04 {
			t.Fatalf("ReadByte: got %x, %v", tag, err)
		}
		if _, err := r.ReadBytes(3); !errors.Is(err, ErrEndOfInput) {
			t.Errorf("ReadBytes past end: got %v, want ErrEndOfInput", err)
		}
		if _, err := r.ReadBytes(-1); !errors.Is(err, ErrEndOfInput) {
			t.Errorf("ReadBytes(-1): got %v, want ErrEndOfInput", err)
		}
		rest, err := r.ReadBytes(2)
		if err != nil {
			t.Fatalf("ReadBytes(2): %v", err)
		}
		if !bytes.Equal(rest.AsSliceLessSafe(), []byte{0xaa, 0xbb}) {
			t.Errorf("ReadBytes(2): got %x", rest.AsSliceLessSafe())
		}
		if !r.AtEnd() {
			t.Error("AtEnd: expected reader to be exhausted")
		}
		if r.NextIs(0x00) {
			t.Error("NextIs: matched past the end")
		}
		if _, err := r.ReadByte(); !errors.Is(err, ErrEndOfInput) {
			t.Errorf("ReadByte at end: got %v, want ErrEndOfInput", err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
}

func TestReadRequiresFullConsumption(t *testing.T) {
	in := New([]byte{1, 2, 3})

	_, err := Read(in, func(r *Reader) (byte, error) {
		return r.ReadByte()
	})
	if !errors.Is(err, ErrEndOfInput) {
		t.Errorf("Read with trailing bytes: got %v, want ErrEndOfInput", err)
	}

	n, err := Read(in, func(r *Reader) (int, error) {
		b, err := r.ReadBytes(in.Len())
		return b.Len(), err
	})
	if err != nil || n != 3 {
		t.Errorf("Read all bytes: got %d, %v", n, err)
	}

	readErr := errors.New("bad encoding")
	if _, err := Read(in, func(r *Reader) (int, error) { return 0, readErr }); !errors.Is(err, readErr) {
		t.Errorf("Read: expected the reader's error, got %v", err)
	}
}
