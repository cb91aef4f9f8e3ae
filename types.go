// Package ec holds private and public key material for Curve25519, NIST P-256
// and NIST P-384 behind one set of types.
//
// A Curve is an immutable table of sizes and capability functions; there is
// one canonical *Curve per supported curve (CurveX25519, CurveP256,
// CurveP384) and all curve-specific code is reached through it. A PrivateKey
// is a fixed-capacity buffer that does not say which curve it belongs to, so
// every operation on it takes the Curve and fails with ErrUnspecified when the
// lengths disagree. An AgreementAlgorithm pairs a Curve with its ECDH function.
//
// All operations are synchronous computations over caller-owned buffers.
// Curves and AgreementAlgorithms may be shared between goroutines; PrivateKey
// and KeyPair values must not be mutated concurrently.
package ec

import (
	"io"
	"strings"

	"github.com/go-i2p/ec/internal/secure"
	"github.com/go-i2p/ec/untrusted"
)

// CurveID identifies a supported curve.
type CurveID uint8

// Supported curves. The zero value is not a curve.
const (
	Curve25519 CurveID = iota + 1
	P256
	P384
)

// String returns the conventional name of the curve.
func (id CurveID) String() string {
	switch id {
	case Curve25519:
		return "Curve25519"
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	default:
		return "unknown"
	}
}

// ParseCurveID maps a curve name to its identifier. The conventional names
// returned by CurveID.String are accepted along with "x25519", "p256" and
// "p384", all case-insensitively.
func ParseCurveID(name string) (CurveID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "curve25519", "x25519":
		return Curve25519, nil
	case "p-256", "p256":
		return P256, nil
	case "p-384", "p384":
		return P384, nil
	default:
		return 0, ErrUnspecified
	}
}

// Curve returns the canonical descriptor for id, or nil if id is not a
// supported curve.
func (id CurveID) Curve() *Curve {
	switch id {
	case Curve25519:
		return CurveX25519
	case P256:
		return CurveP256
	case P384:
		return CurveP384
	default:
		return nil
	}
}

// A Curve describes one supported curve: its fixed sizes and the three
// capabilities that validate, generate and derive from private keys. Curves
// are only constructed by this package.
type Curve struct {
	publicKeyLen     int
	elemAndScalarLen int
	id               CurveID

	// Precondition: len(b) == elemAndScalarLen.
	checkPrivateKeyBytes func(b []byte) error

	generatePrivateKey func(rng io.Reader) (PrivateKey, error)

	// Precondition: len(out) == publicKeyLen and k holds elemAndScalarLen bytes.
	publicFromPrivate func(out []byte, k *PrivateKey) error
}

// ID returns the curve's identifier.
func (c *Curve) ID() CurveID { return c.id }

// PublicKeyLen is the exact length of an encoded public key.
func (c *Curve) PublicKeyLen() int { return c.publicKeyLen }

// ElemAndScalarLen is the exact length of a field element and of a private key.
func (c *Curve) ElemAndScalarLen() int { return c.elemAndScalarLen }

func (c *Curve) String() string { return c.id.String() }

// Curves returns the supported curve descriptors.
func Curves() []*Curve {
	return []*Curve{CurveX25519, CurveP256, CurveP384}
}

// An AgreementAlgorithm is a curve together with its Diffie-Hellman function.
// It is the unit consumed by the agreement package.
type AgreementAlgorithm struct {
	curve *Curve

	// Precondition: len(out) == curve.elemAndScalarLen, k holds
	// curve.elemAndScalarLen bytes and peer.Len() == curve.publicKeyLen.
	ecdh func(out []byte, k *PrivateKey, peer untrusted.Input) error
}

// Curve returns the algorithm's curve.
func (a *AgreementAlgorithm) Curve() *Curve { return a.curve }

// SharedSecretLen is the exact length of the agreement output.
func (a *AgreementAlgorithm) SharedSecretLen() int { return a.curve.elemAndScalarLen }

// Agree computes the shared secret between k and the peer's public key into
// out. out must be exactly SharedSecretLen bytes and k must have been created
// for the algorithm's curve. Malformed or low-order peer keys are rejected. On
// failure out is zeroed.
func (a *AgreementAlgorithm) Agree(out []byte, k *PrivateKey, peer untrusted.Input) error {
	if a == nil || len(out) != a.SharedSecretLen() || !k.fits(a.curve) {
		return ErrUnspecified
	}
	if peer.Len() != a.curve.publicKeyLen {
		return ErrUnspecified
	}
	if err := a.ecdh(out, k, peer); err != nil {
		secure.Zero(out)
		return ErrUnspecified
	}
	return nil
}
