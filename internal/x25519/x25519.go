// Package x25519 provides the Curve25519 capabilities behind ec.CurveX25519.
//
// Every function expects buffers whose lengths the caller has already checked
// against ScalarLen, PublicKeyLen and SharedSecretLen. The length checks done
// here only guard against misuse of the package from inside the module.
package x25519

import (
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/go-i2p/ec/internal/secure"
)

const (
	// ScalarLen is the length of a Curve25519 private scalar.
	ScalarLen = curve25519.ScalarSize

	// PublicKeyLen is the length of an encoded u-coordinate.
	PublicKeyLen = curve25519.PointSize

	// SharedSecretLen is the length of the X25519 output.
	SharedSecretLen = curve25519.PointSize
)

var errInvalid = errors.New("x25519: invalid input")

// CheckPrivateKeyBytes accepts any ScalarLen-byte string: X25519 clamps the
// scalar during multiplication, so there are no out-of-range values.
func CheckPrivateKeyBytes(b []byte) error {
	if len(b) != ScalarLen {
		return errInvalid
	}
	return nil
}

// GeneratePrivateKey fills out with ScalarLen bytes from rng.
func GeneratePrivateKey(rng io.Reader, out []byte) error {
	if len(out) != ScalarLen {
		return errInvalid
	}
	if _, err := io.ReadFull(rng, out); err != nil {
		secure.Zero(out)
		return err
	}
	return nil
}

// PublicFromPrivate writes X25519(priv, 9) to out.
func PublicFromPrivate(out, priv []byte) error {
	if len(out) != PublicKeyLen || len(priv) != ScalarLen {
		return errInvalid
	}
	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return err
	}
	copy(out, pub)
	return nil
}

// ECDH writes X25519(priv, peer) to out. It fails when peer is not
// PublicKeyLen bytes or when the result is all zeros, which happens exactly
// when peer is a low-order point.
func ECDH(out, priv, peer []byte) error {
	if len(out) != SharedSecretLen || len(priv) != ScalarLen {
		return errInvalid
	}
	shared, err := curve25519.X25519(priv, peer)
	if err != nil {
		return err
	}
	copy(out, shared)
	secure.Zero(shared)
	return nil
}
