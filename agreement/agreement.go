// Package agreement implements ephemeral elliptic-curve Diffie-Hellman key
// agreement on top of the ec package.
//
// An EphemeralPrivateKey is used for exactly one agreement: AgreeEphemeral
// wipes it whether or not the agreement succeeds. The raw shared secret never
// leaves AgreeEphemeral; it is handed to a key derivation function supplied by
// the caller and wiped afterwards.
package agreement

import (
	"io"

	"github.com/go-i2p/ec"
	"github.com/go-i2p/ec/internal/secure"
	"github.com/go-i2p/ec/untrusted"
)

// Supported algorithms.
var (
	X25519   = ec.AgreementX25519
	ECDHP256 = ec.AgreementECDHP256
	ECDHP384 = ec.AgreementECDHP384
)

// An EphemeralPrivateKey is a single-use private key for one algorithm.
type EphemeralPrivateKey struct {
	key ec.PrivateKey
	alg *ec.AgreementAlgorithm
}

// GenerateEphemeral returns a fresh key for alg. If rng is nil,
// crypto/rand.Reader is used.
func GenerateEphemeral(alg *ec.AgreementAlgorithm, rng io.Reader) (*EphemeralPrivateKey, error) {
	if alg == nil {
		return nil, ec.ErrUnspecified
	}
	k, err := ec.GeneratePrivateKey(alg.Curve(), rng)
	if err != nil {
		return nil, err
	}
	return &EphemeralPrivateKey{key: k, alg: alg}, nil
}

// Algorithm returns the key's algorithm.
func (k *EphemeralPrivateKey) Algorithm() *ec.AgreementAlgorithm {
	return k.alg
}

// ComputePublicKey returns the public key to send to the peer.
func (k *EphemeralPrivateKey) ComputePublicKey() (PublicKey, error) {
	if k == nil || k.alg == nil {
		return PublicKey{}, ec.ErrUnspecified
	}
	c := k.alg.Curve()
	pub := PublicKey{alg: k.alg, n: c.PublicKeyLen()}
	if err := k.key.ComputePublicKey(c, pub.bytes[:pub.n]); err != nil {
		return PublicKey{}, err
	}
	return pub, nil
}

// A PublicKey is an encoded public key together with its algorithm.
type PublicKey struct {
	alg   *ec.AgreementAlgorithm
	bytes [ec.PublicKeyMaxLen]byte
	n     int
}

// Algorithm returns the public key's algorithm.
func (p *PublicKey) Algorithm() *ec.AgreementAlgorithm {
	return p.alg
}

// Bytes returns the encoded public key. The result aliases p.
func (p *PublicKey) Bytes() []byte {
	return p.bytes[:p.n]
}

// AgreeEphemeral performs key agreement between k and the peer's public key,
// then calls kdf with the shared secret and returns its result. k is wiped and
// cannot be used again.
//
// It fails with ec.ErrUnspecified if k is nil or was already used, if peerAlg
// differs from k's algorithm, if the peer's public key is invalid or if kdf is
// nil. Errors from kdf
// are returned unchanged. kdf must not retain the slice it is given.
func AgreeEphemeral[T any](k *EphemeralPrivateKey, peerAlg *ec.AgreementAlgorithm,
	peerPublicKey untrusted.Input, kdf func(sharedSecret []byte) (T, error)) (T, error) {
	var zero T
	if k == nil {
		return zero, ec.ErrUnspecified
	}
	defer k.key.Zeroize()

	if peerAlg == nil || k.alg == nil || peerAlg.Curve().ID() != k.alg.Curve().ID() {
		return zero, ec.ErrUnspecified
	}

	var buf [ec.ElemMaxBytes]byte
	defer secure.Zero(buf[:])
	secret := buf[:k.alg.SharedSecretLen()]
	if err := k.alg.Agree(secret, &k.key, peerPublicKey); err != nil {
		return zero, err
	}
	if kdf == nil {
		return zero, ec.ErrUnspecified
	}
	return kdf(secret)
}
