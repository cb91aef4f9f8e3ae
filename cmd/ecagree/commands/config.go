package commands

// CLIConfig contains the configuration of the ecagree command. Fields are
// filled from flags and from ECAGREE_* environment variables.
type CLIConfig struct {
	// Curve selects the curve: curve25519 (x25519), p256 or p384.
	Curve string `mapstructure:"curve"`

	// Key is the hex-encoded private key.
	Key string `mapstructure:"key"`

	// Peer is the hex-encoded public key of the remote party.
	Peer string `mapstructure:"peer"`

	// Salt and Info are the HKDF inputs used by agree when Length > 0.
	Salt string `mapstructure:"salt"`
	Info string `mapstructure:"info"`

	// Length is the number of HKDF-SHA256 output bytes agree derives from the
	// shared secret. Zero prints the raw shared secret.
	Length int `mapstructure:"length"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log"`
}

// NewDefaultCLIConfig returns the default configuration.
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Curve:    "x25519",
		LogLevel: "info",
	}
}
