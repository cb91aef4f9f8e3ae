package ec

import (
	"errors"

	"github.com/go-i2p/ec/internal/nistcurve"
	"github.com/go-i2p/ec/internal/x25519"
)

// elemMaxBits is the field size of the largest supported curve, P-384.
const elemMaxBits = 384

// ElemMaxBytes is the length of the largest field element of any supported
// curve.
const ElemMaxBytes = (elemMaxBits + 7) / 8

// ScalarMaxBytes is the length of the largest private scalar of any supported
// curve. It is the capacity of every PrivateKey.
const ScalarMaxBytes = ElemMaxBytes

// PublicKeyMaxLen is the length of the largest encoded public key: a format
// tag byte followed by two field elements.
const PublicKeyMaxLen = 1 + 2*ElemMaxBytes

// PKCS8DocumentMaxLen bounds the size of a PKCS#8 envelope generated for a key
// of any supported curve. 40 is the length of the P-384 template, which is one
// byte shorter than the P-256 one; the larger P-384 key material more than
// makes up for it. This is not a limit on documents a parser may be asked to
// read.
const PKCS8DocumentMaxLen = 40 + ScalarMaxBytes + PublicKeyMaxLen

// Every supported curve has to fit in the fixed-capacity buffers. A curve that
// does not makes one of these constants negative, which fails to compile.
const (
	_ uint = ScalarMaxBytes - x25519.ScalarLen
	_ uint = ScalarMaxBytes - nistcurve.P256ScalarLen
	_ uint = ScalarMaxBytes - nistcurve.P384ScalarLen
	_ uint = PublicKeyMaxLen - x25519.PublicKeyLen
	_ uint = PublicKeyMaxLen - (1 + 2*nistcurve.P256ScalarLen)
	_ uint = PublicKeyMaxLen - (1 + 2*nistcurve.P384ScalarLen)

	// PrivateKey records its length in a uint8.
	_ uint8 = ScalarMaxBytes
)

// ErrUnspecified is the only error returned by this package. It does not say
// which check failed.
var ErrUnspecified = errors.New("ec: unspecified error")
