// Package nistcurve provides the P-256 and P-384 capabilities behind
// ec.CurveP256 and ec.CurveP384.
//
// Scalars are fixed-length big-endian integers in [1, n-1]. Public keys are
// uncompressed SEC 1 points (0x04 || X || Y). The shared secret is the
// X coordinate of the product point.
package nistcurve

import (
	"crypto/ecdh"
	"errors"
	"io"

	"github.com/go-i2p/ec/internal/secure"
	"github.com/go-i2p/ec/untrusted"
)

// uncompressedTag is the SEC 1 format byte of an uncompressed point.
const uncompressedTag = 0x04

// maxGenerateAttempts bounds rejection sampling in GeneratePrivateKey. For
// both curves the chance of a random string being out of range is below
// 2^-32, so hitting the bound means the random source is broken.
const maxGenerateAttempts = 100

var (
	errInvalid   = errors.New("nistcurve: invalid input")
	errExhausted = errors.New("nistcurve: no valid scalar after retries")
)

// Curve is one short Weierstrass curve. Values are immutable.
type Curve struct {
	curve     ecdh.Curve
	scalarLen int
	name      string
}

// Field element and scalar lengths.
const (
	P256ScalarLen = 32
	P384ScalarLen = 48
)

var (
	// P256 is NIST P-256 (secp256r1).
	P256 = Curve{curve: ecdh.P256(), scalarLen: P256ScalarLen, name: "P-256"}

	// P384 is NIST P-384 (secp384r1).
	P384 = Curve{curve: ecdh.P384(), scalarLen: P384ScalarLen, name: "P-384"}
)

// ScalarLen is the length of a private scalar and of a field element.
func (c Curve) ScalarLen() int { return c.scalarLen }

// PublicKeyLen is the length of an uncompressed point.
func (c Curve) PublicKeyLen() int { return 1 + 2*c.scalarLen }

// SharedSecretLen is the length of the ECDH output.
func (c Curve) SharedSecretLen() int { return c.scalarLen }

// String returns the curve name.
func (c Curve) String() string { return c.name }

// CheckPrivateKeyBytes rejects zero and values not below the group order.
func (c Curve) CheckPrivateKeyBytes(b []byte) error {
	if len(b) != c.scalarLen {
		return errInvalid
	}
	if _, err := c.curve.NewPrivateKey(b); err != nil {
		return err
	}
	return nil
}

// GeneratePrivateKey fills out with a uniformly random valid scalar drawn from
// rng. Candidates outside [1, n-1] are wiped and redrawn.
func (c Curve) GeneratePrivateKey(rng io.Reader, out []byte) error {
	if len(out) != c.scalarLen {
		return errInvalid
	}
	for i := 0; i < maxGenerateAttempts; i++ {
		if _, err := io.ReadFull(rng, out); err != nil {
			secure.Zero(out)
			return err
		}
		if c.CheckPrivateKeyBytes(out) == nil {
			return nil
		}
		secure.Zero(out)
	}
	return errExhausted
}

// PublicFromPrivate writes priv·G to out in uncompressed form.
func (c Curve) PublicFromPrivate(out, priv []byte) error {
	if len(out) != c.PublicKeyLen() || len(priv) != c.scalarLen {
		return errInvalid
	}
	k, err := c.curve.NewPrivateKey(priv)
	if err != nil {
		return err
	}
	copy(out, k.PublicKey().Bytes())
	return nil
}

// ParsePublicKey decodes an uncompressed point and checks that it is on the
// curve and is not the point at infinity.
func (c Curve) ParsePublicKey(in untrusted.Input) (*ecdh.PublicKey, error) {
	return untrusted.Read(in, func(r *untrusted.Reader) (*ecdh.PublicKey, error) {
		if !r.NextIs(uncompressedTag) {
			return nil, errInvalid
		}
		if _, err := r.ReadByte(); err != nil {
			return nil, err
		}
		if _, err := r.ReadBytes(2 * c.scalarLen); err != nil {
			return nil, err
		}
		return c.curve.NewPublicKey(in.AsSliceLessSafe())
	})
}

// ECDH writes the X coordinate of priv·peer to out. peer must be an
// uncompressed point on the curve other than the point at infinity.
func (c Curve) ECDH(out, priv []byte, peer untrusted.Input) error {
	if len(out) != c.SharedSecretLen() || len(priv) != c.scalarLen {
		return errInvalid
	}
	p, err := c.ParsePublicKey(peer)
	if err != nil {
		return err
	}
	k, err := c.curve.NewPrivateKey(priv)
	if err != nil {
		return err
	}
	shared, err := k.ECDH(p)
	if err != nil {
		return err
	}
	copy(out, shared)
	secure.Zero(shared)
	return nil
}
