// Package untrusted wraps attacker-controlled byte buffers.
//
// An Input carries bytes that have not been validated. The only ways to get at
// the contents are AsSliceLessSafe, which is meant to be called by validation
// code right before it checks the bytes, and Read, which walks the input with a
// bounds-checked Reader. Code that accepts an Input rather than a []byte is
// saying at the type level that it performs its own validation.
package untrusted

import "errors"

// ErrEndOfInput is returned by Reader methods that would read past the end of
// the input, and by Read when the input is not fully consumed.
var ErrEndOfInput = errors.New("untrusted: unexpected end of input")

// Input is an immutable view of untrusted bytes.
type Input struct {
	b []byte
}

// New wraps b. The caller must not modify b while the Input is in use.
func New(b []byte) Input {
	return Input{b: b}
}

// Len returns the number of bytes in the input.
func (in Input) Len() int {
	return len(in.b)
}

// IsEmpty reports whether the input has no bytes.
func (in Input) IsEmpty() bool {
	return len(in.b) == 0
}

// AsSliceLessSafe returns the underlying bytes. The name is a reminder that the
// result is still unvalidated.
func (in Input) AsSliceLessSafe() []byte {
	return in.b
}

// Read runs read over a fresh Reader positioned at the start of in and
// requires that read consumes the whole input.
func Read[T any](in Input, read func(r *Reader) (T, error)) (T, error) {
	r := &Reader{in: in}
	v, err := read(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if !r.AtEnd() {
		var zero T
		return zero, ErrEndOfInput
	}
	return v, nil
}

// A Reader reads an Input sequentially without ever going out of bounds.
type Reader struct {
	in  Input
	pos int
}

// AtEnd reports whether every byte has been consumed.
func (r *Reader) AtEnd() bool {
	return r.pos == len(r.in.b)
}

// NextIs reports whether the next byte equals b without consuming it.
func (r *Reader) NextIs(b byte) bool {
	return r.pos < len(r.in.b) && r.in.b[r.pos] == b
}

// ReadByte consumes one byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.in.b) {
		return 0, ErrEndOfInput
	}
	b := r.in.b[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes consumes exactly n bytes and returns them as a new Input.
func (r *Reader) ReadBytes(n int) (Input, error) {
	if n < 0 || n > len(r.in.b)-r.pos {
		return Input{}, ErrEndOfInput
	}
	out := Input{b: r.in.b[r.pos : r.pos+n : r.pos+n]}
	r.pos += n
	return out, nil
}
