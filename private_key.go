package ec

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/go-i2p/ec/internal/secure"
	"github.com/go-i2p/ec/untrusted"
)

// A PrivateKey is a private scalar for one of the supported curves, stored in
// a buffer large enough for any of them. Only the leading
// Curve.ElemAndScalarLen bytes are meaningful; the rest are zero.
//
// The key does not record its curve. It records the length of its meaningful
// prefix, so using it with a curve of a different size fails instead of
// truncating or over-reading. Curves of the same size (Curve25519 and P-256)
// cannot be told apart; callers must keep track of which curve a key is for.
//
// The zero value is an empty key that every operation rejects. Formatting a
// PrivateKey with the fmt package never prints its bytes.
type PrivateKey struct {
	bytes [ScalarMaxBytes]byte
	n     uint8
}

// GeneratePrivateKey returns a fresh random private key for c, drawing entropy
// from rng. If rng is nil, crypto/rand.Reader is used. Any failure, including
// a short read from rng, is reported as ErrUnspecified.
func GeneratePrivateKey(c *Curve, rng io.Reader) (PrivateKey, error) {
	if err := initOnce(); err != nil {
		return PrivateKey{}, err
	}
	if c == nil {
		return PrivateKey{}, ErrUnspecified
	}
	if rng == nil {
		rng = rand.Reader
	}
	return c.generatePrivateKey(rng)
}

// PrivateKeyFromBytes imports an encoded private key for c. The input must be
// exactly c.ElemAndScalarLen bytes and must be a valid scalar for c.
func PrivateKeyFromBytes(c *Curve, in untrusted.Input) (PrivateKey, error) {
	if err := initOnce(); err != nil {
		return PrivateKey{}, err
	}
	if c == nil {
		return PrivateKey{}, ErrUnspecified
	}
	b := in.AsSliceLessSafe()
	if len(b) != c.elemAndScalarLen {
		return PrivateKey{}, ErrUnspecified
	}
	if err := c.checkPrivateKeyBytes(b); err != nil {
		return PrivateKey{}, ErrUnspecified
	}
	var k PrivateKey
	copy(k.bytes[:c.elemAndScalarLen], b)
	k.n = uint8(c.elemAndScalarLen)
	return k, nil
}

// Bytes returns the encoded key for c. The result aliases the key's buffer and
// must not be modified; it is invalidated by Zeroize. It fails if the key was
// not created for a curve of c's size.
func (k *PrivateKey) Bytes(c *Curve) ([]byte, error) {
	if !k.fits(c) {
		return nil, ErrUnspecified
	}
	return k.bytes[:c.elemAndScalarLen], nil
}

// ComputePublicKey writes the public key corresponding to k on curve c into
// out, which must be exactly c.PublicKeyLen bytes.
func (k *PrivateKey) ComputePublicKey(c *Curve, out []byte) error {
	if !k.fits(c) || len(out) != c.publicKeyLen {
		return ErrUnspecified
	}
	if err := c.publicFromPrivate(out, k); err != nil {
		return ErrUnspecified
	}
	return nil
}

// Zeroize wipes the key. The key is empty afterwards.
func (k *PrivateKey) Zeroize() {
	if k == nil {
		return
	}
	secure.Zero(k.bytes[:])
	k.n = 0
}

func (k *PrivateKey) fits(c *Curve) bool {
	return k != nil && c != nil && k.n != 0 && int(k.n) == c.elemAndScalarLen
}

const redactedPrivateKey = "ec.PrivateKey{REDACTED}"

func (k PrivateKey) String() string { return redactedPrivateKey }

func (k PrivateKey) GoString() string { return redactedPrivateKey }

// Format keeps every fmt verb, %x included, from printing key bytes.
func (k PrivateKey) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redactedPrivateKey)
}
