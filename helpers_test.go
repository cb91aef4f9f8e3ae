package ec

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"
)

// hexReader creates an io.Reader from a hex-encoded string. Used for
// deterministic key generation in tests.
func hexReader(s string) io.Reader {
	res, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return bytes.NewBuffer(res)
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// scalarOne returns the big-endian encoding of 1 in n bytes.
func scalarOne(n int) []byte {
	b := make([]byte, n)
	b[n-1] = 1
	return b
}

// failingReader returns err on every read.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
