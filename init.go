package ec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/go-i2p/ec/internal/nistcurve"
	"github.com/go-i2p/ec/internal/x25519"
)

// Features describes the CPU capabilities detected during initialization.
type Features struct {
	AES          bool // AES-NI or ARMv8 AES
	CarrylessMul bool // PCLMULQDQ or PMULL
	AVX2         bool
	BMI2         bool
	ADX          bool
	SHA2         bool // ARMv8 SHA-256 instructions
}

// An initializer runs body at most once and remembers its result. Every
// caller of do blocks until body has returned.
type initializer struct {
	once sync.Once
	body func() (Features, error)

	// runs counts executions of body.
	runs atomic.Uint32

	features Features
	err      error
}

func newInitializer(body func() (Features, error)) *initializer {
	return &initializer{body: body}
}

func (in *initializer) do() error {
	in.once.Do(func() {
		in.runs.Add(1)
		in.features, in.err = in.body()
	})
	return in.err
}

// lib is the process-wide initializer.
var lib = newInitializer(initialize)

// initOnce performs process-wide setup. It is called at the start of every
// operation that creates a key; only the first call does any work and every
// other caller waits for it to finish. A failed setup is permanent.
func initOnce() error {
	if err := lib.do(); err != nil {
		return ErrUnspecified
	}
	return nil
}

func initialize() (Features, error) {
	f := detectFeatures()
	if err := selfTest(); err != nil {
		return f, err
	}
	return f, nil
}

func detectFeatures() Features {
	return Features{
		AES:          cpu.X86.HasAES || cpu.ARM64.HasAES,
		CarrylessMul: cpu.X86.HasPCLMULQDQ || cpu.ARM64.HasPMULL,
		AVX2:         cpu.X86.HasAVX2,
		BMI2:         cpu.X86.HasBMI2,
		ADX:          cpu.X86.HasADX,
		SHA2:         cpu.ARM64.HasSHA2,
	}
}

var errSelfTest = errors.New("ec: curve self-test failed")

// Public key derivation known answers: RFC 7748 section 6.1 for X25519 and
// the base point (scalar 1) for the NIST curves.
var selfTestVectors = []struct {
	derive       func(out, priv []byte) error
	priv, public string
}{
	{
		derive: x25519.PublicFromPrivate,
		priv:   "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a",
		public: "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a",
	},
	{
		derive: nistcurve.P256.PublicFromPrivate,
		priv:   "0000000000000000000000000000000000000000000000000000000000000001",
		public: "04" +
			"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296" +
			"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
	},
	{
		derive: nistcurve.P384.PublicFromPrivate,
		priv:   "000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001",
		public: "04" +
			"aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7" +
			"3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f",
	},
}

func selfTest() error {
	for _, v := range selfTestVectors {
		priv, err := hex.DecodeString(v.priv)
		if err != nil {
			return errSelfTest
		}
		want, err := hex.DecodeString(v.public)
		if err != nil {
			return errSelfTest
		}
		got := make([]byte, len(want))
		if err := v.derive(got, priv); err != nil || !bytes.Equal(got, want) {
			return errSelfTest
		}
	}
	return nil
}

// CPUFeatures reports the CPU capabilities detected at initialization,
// initializing the package first if needed.
func CPUFeatures() Features {
	_ = initOnce()
	return lib.features
}
