package ec

import (
	"fmt"
	"io"

	"github.com/go-i2p/ec/untrusted"
)

// A KeyPair is a private key together with its public key.
type KeyPair struct {
	privateKey PrivateKey
	publicKey  [PublicKeyMaxLen]byte
}

// GenerateKeyPair generates a private key for c and derives its public key.
func GenerateKeyPair(c *Curve, rng io.Reader) (KeyPair, error) {
	k, err := GeneratePrivateKey(c, rng)
	if err != nil {
		return KeyPair{}, err
	}
	return newKeyPair(c, &k)
}

// KeyPairFromPrivateKeyBytes imports a private key for c and derives its
// public key.
func KeyPairFromPrivateKeyBytes(c *Curve, in untrusted.Input) (KeyPair, error) {
	k, err := PrivateKeyFromBytes(c, in)
	if err != nil {
		return KeyPair{}, err
	}
	return newKeyPair(c, &k)
}

// newKeyPair moves k into a new KeyPair. k is empty afterwards.
func newKeyPair(c *Curve, k *PrivateKey) (KeyPair, error) {
	kp := KeyPair{privateKey: *k}
	k.Zeroize()
	if err := kp.privateKey.ComputePublicKey(c, kp.publicKey[:c.publicKeyLen]); err != nil {
		kp.Zeroize()
		return KeyPair{}, err
	}
	return kp, nil
}

// PrivateKey returns the pair's private key.
func (kp *KeyPair) PrivateKey() *PrivateKey {
	if kp == nil {
		return nil
	}
	return &kp.privateKey
}

// PublicKey returns the encoded public key for c. The result aliases the
// pair's buffer and must not be modified.
func (kp *KeyPair) PublicKey(c *Curve) ([]byte, error) {
	if kp == nil || !kp.privateKey.fits(c) {
		return nil, ErrUnspecified
	}
	return kp.publicKey[:c.publicKeyLen], nil
}

// Zeroize wipes the private key and clears the public key.
func (kp *KeyPair) Zeroize() {
	if kp == nil {
		return
	}
	kp.privateKey.Zeroize()
	kp.publicKey = [PublicKeyMaxLen]byte{}
}

func (kp KeyPair) String() string { return "ec.KeyPair{REDACTED}" }

// Format keeps fmt from reaching the embedded private key through reflection.
func (kp KeyPair) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, kp.String())
}
