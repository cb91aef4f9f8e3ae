package agreement

import (
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrInvalidLength is returned by an HKDF function built with a negative
// output length.
var ErrInvalidLength = errors.New("agreement: invalid HKDF output length")

// HKDF returns a key derivation function for AgreeEphemeral that runs
// HKDF-Extract and HKDF-Expand (RFC 5869) with hash h over the shared secret
// and returns length bytes of output keying material. Lengths above 255 times
// the hash size are refused by HKDF-Expand and returned as errors.
func HKDF(h func() hash.Hash, salt, info []byte, length int) func(sharedSecret []byte) ([]byte, error) {
	return func(sharedSecret []byte) ([]byte, error) {
		if length < 0 {
			return nil, ErrInvalidLength
		}
		out := make([]byte, length)
		if _, err := io.ReadFull(hkdf.New(h, sharedSecret, salt, info), out); err != nil {
			return nil, err
		}
		return out, nil
	}
}
