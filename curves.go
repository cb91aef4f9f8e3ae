package ec

import (
	"io"

	"github.com/go-i2p/ec/internal/nistcurve"
	"github.com/go-i2p/ec/internal/x25519"
	"github.com/go-i2p/ec/untrusted"
)

// Canonical curve descriptors.
var (
	// CurveX25519 is Curve25519 in its Montgomery form (RFC 7748). Public keys
	// are 32-byte u-coordinates.
	CurveX25519 = &Curve{
		publicKeyLen:         x25519.PublicKeyLen,
		elemAndScalarLen:     x25519.ScalarLen,
		id:                   Curve25519,
		checkPrivateKeyBytes: x25519.CheckPrivateKeyBytes,
		generatePrivateKey:   generator(x25519.ScalarLen, x25519.GeneratePrivateKey),
		publicFromPrivate: func(out []byte, k *PrivateKey) error {
			return x25519.PublicFromPrivate(out, k.bytes[:x25519.ScalarLen])
		},
	}

	// CurveP256 is NIST P-256. Public keys are uncompressed SEC 1 points.
	CurveP256 = nistDescriptor(P256, nistcurve.P256)

	// CurveP384 is NIST P-384. Public keys are uncompressed SEC 1 points.
	CurveP384 = nistDescriptor(P384, nistcurve.P384)
)

// Canonical agreement algorithms.
var (
	// AgreementX25519 is X25519 as specified in RFC 7748. All-zero outputs,
	// produced by low-order peer points, are rejected.
	AgreementX25519 = &AgreementAlgorithm{
		curve: CurveX25519,
		ecdh: func(out []byte, k *PrivateKey, peer untrusted.Input) error {
			return x25519.ECDH(out, k.bytes[:x25519.ScalarLen], peer.AsSliceLessSafe())
		},
	}

	// AgreementECDHP256 is ECDH over P-256; the output is the X coordinate.
	AgreementECDHP256 = nistAgreement(CurveP256, nistcurve.P256)

	// AgreementECDHP384 is ECDH over P-384; the output is the X coordinate.
	AgreementECDHP384 = nistAgreement(CurveP384, nistcurve.P384)
)

func nistDescriptor(id CurveID, nc nistcurve.Curve) *Curve {
	n := nc.ScalarLen()
	return &Curve{
		publicKeyLen:         nc.PublicKeyLen(),
		elemAndScalarLen:     n,
		id:                   id,
		checkPrivateKeyBytes: nc.CheckPrivateKeyBytes,
		generatePrivateKey:   generator(n, nc.GeneratePrivateKey),
		publicFromPrivate: func(out []byte, k *PrivateKey) error {
			return nc.PublicFromPrivate(out, k.bytes[:n])
		},
	}
}

func nistAgreement(c *Curve, nc nistcurve.Curve) *AgreementAlgorithm {
	n := nc.ScalarLen()
	return &AgreementAlgorithm{
		curve: c,
		ecdh: func(out []byte, k *PrivateKey, peer untrusted.Input) error {
			return nc.ECDH(out, k.bytes[:n], peer)
		},
	}
}

// generator adapts a curve's scalar generator, which fills a caller buffer,
// to the descriptor's PrivateKey-returning form.
func generator(n int, gen func(rng io.Reader, out []byte) error) func(io.Reader) (PrivateKey, error) {
	return func(rng io.Reader) (PrivateKey, error) {
		var k PrivateKey
		if err := gen(rng, k.bytes[:n]); err != nil {
			k.Zeroize()
			return PrivateKey{}, ErrUnspecified
		}
		k.n = uint8(n)
		return k, nil
	}
}
