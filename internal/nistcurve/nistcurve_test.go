package nistcurve

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/go-i2p/ec/untrusted"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

const (
	p256Order = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
	p384Order = "ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973"
)

func TestCheckPrivateKeyBytes(t *testing.T) {
	one := func(n int) []byte {
		b := make([]byte, n)
		b[n-1] = 1
		return b
	}
	testCases := []struct {
		name  string
		curve Curve
		key   []byte
		ok    bool
	}{
		{"P-256 one", P256, one(32), true},
		{"P-256 zero", P256, make([]byte, 32), false},
		{"P-256 order", P256, mustHex(t, p256Order), false},
		{"P-256 all ones", P256, bytes.Repeat([]byte{0xff}, 32), false},
		{"P-256 wrong length", P256, one(48), false},
		{"P-384 one", P384, one(48), true},
		{"P-384 zero", P384, make([]byte, 48), false},
		{"P-384 order", P384, mustHex(t, p384Order), false},
		{"P-384 all ones", P384, bytes.Repeat([]byte{0xff}, 48), false},
		{"P-384 wrong length", P384, one(32), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.curve.CheckPrivateKeyBytes(tc.key)
			if tc.ok && err != nil {
				t.Errorf("expected key to be accepted: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected key to be rejected")
			}
		})
	}
}

func TestGeneratePrivateKeyRejectsOutOfRange(t *testing.T) {
	// First candidate is the group order (invalid), second is valid.
	stream := append(mustHex(t, p256Order), bytes.Repeat([]byte{0x11}, 32)...)
	out := make([]byte, 32)
	if err := P256.GeneratePrivateKey(bytes.NewReader(stream), out); err != nil {
		t.Fatalf("GeneratePrivateKey: %v", err)
	}
	if !bytes.Equal(out, bytes.Repeat([]byte{0x11}, 32)) {
		t.Errorf("expected second candidate, got %x", out)
	}

	zeros := bytes.NewReader(make([]byte, 32*maxGenerateAttempts))
	if err := P256.GeneratePrivateKey(zeros, out); err == nil {
		t.Error("expected all-zero random source to exhaust retries")
	}
	if !bytes.Equal(out, make([]byte, 32)) {
		t.Errorf("expected output wiped after failure, got %x", out)
	}
}

func TestECDHAgrees(t *testing.T) {
	for _, c := range []Curve{P256, P384} {
		t.Run(c.String(), func(t *testing.T) {
			a := make([]byte, c.ScalarLen())
			b := make([]byte, c.ScalarLen())
			if err := c.GeneratePrivateKey(rand.Reader, a); err != nil {
				t.Fatalf("GeneratePrivateKey: %v", err)
			}
			if err := c.GeneratePrivateKey(rand.Reader, b); err != nil {
				t.Fatalf("GeneratePrivateKey: %v", err)
			}
			pubA := make([]byte, c.PublicKeyLen())
			pubB := make([]byte, c.PublicKeyLen())
			if err := c.PublicFromPrivate(pubA, a); err != nil {
				t.Fatalf("PublicFromPrivate: %v", err)
			}
			if err := c.PublicFromPrivate(pubB, b); err != nil {
				t.Fatalf("PublicFromPrivate: %v", err)
			}
			if pubA[0] != 0x04 {
				t.Errorf("expected uncompressed point tag 0x04, got %#x", pubA[0])
			}

			ab := make([]byte, c.SharedSecretLen())
			ba := make([]byte, c.SharedSecretLen())
			if err := c.ECDH(ab, a, untrusted.New(pubB)); err != nil {
				t.Fatalf("ECDH(a, B): %v", err)
			}
			if err := c.ECDH(ba, b, untrusted.New(pubA)); err != nil {
				t.Fatalf("ECDH(b, A): %v", err)
			}
			if !bytes.Equal(ab, ba) {
				t.Errorf("shared secrets differ: %x vs %x", ab, ba)
			}
		})
	}
}

func TestECDHRejectsInvalidPeer(t *testing.T) {
	priv := make([]byte, 32)
	priv[31] = 7
	pub := make([]byte, P256.PublicKeyLen())
	if err := P256.PublicFromPrivate(pub, priv); err != nil {
		t.Fatalf("PublicFromPrivate: %v", err)
	}

	offCurve := append([]byte(nil), pub...)
	offCurve[len(offCurve)-1] ^= 0x01
	compressed := append([]byte{0x02 | (pub[64] & 1)}, pub[1:33]...)
	badTag := append([]byte(nil), pub...)
	badTag[0] = 0x05

	testCases := []struct {
		name string
		peer []byte
	}{
		{"empty", nil},
		{"point at infinity", []byte{0x00}},
		{"off curve", offCurve},
		{"compressed", compressed},
		{"bad format tag", badTag},
		{"truncated", pub[:64]},
		{"trailing byte", append(append([]byte(nil), pub...), 0x00)},
		{"tag only", []byte{0x04}},
		{"all zero", make([]byte, 65)},
	}
	out := make([]byte, P256.SharedSecretLen())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := P256.ECDH(out, priv, untrusted.New(tc.peer)); err == nil {
				t.Errorf("expected peer %x to be rejected", tc.peer)
			}
		})
	}
}

func TestString(t *testing.T) {
	if !strings.EqualFold(P256.String(), "p-256") || !strings.EqualFold(P384.String(), "p-384") {
		t.Errorf("unexpected names %q %q", P256, P384)
	}
}

func TestParsePublicKey(t *testing.T) {
	for _, c := range []Curve{P256, P384} {
		t.Run(c.String(), func(t *testing.T) {
			priv := make([]byte, c.ScalarLen())
			priv[len(priv)-1] = 3
			pub := make([]byte, c.PublicKeyLen())
			if err := c.PublicFromPrivate(pub, priv); err != nil {
				t.Fatalf("PublicFromPrivate: %v", err)
			}

			p, err := c.ParsePublicKey(untrusted.New(pub))
			if err != nil {
				t.Fatalf("ParsePublicKey: %v", err)
			}
			if !bytes.Equal(p.Bytes(), pub) {
				t.Errorf("ParsePublicKey: got %x, want %x", p.Bytes(), pub)
			}

			if _, err := c.ParsePublicKey(untrusted.New(pub[:len(pub)-1])); err == nil {
				t.Error("expected short point to be rejected")
			}
			if _, err := c.ParsePublicKey(untrusted.New(append(pub, 0x01))); err == nil {
				t.Error("expected trailing data to be rejected")
			}
			compressed := append([]byte{0x02}, pub[1:1+c.ScalarLen()]...)
			if _, err := c.ParsePublicKey(untrusted.New(compressed)); err == nil {
				t.Error("expected compressed point to be rejected")
			}
		})
	}
}
