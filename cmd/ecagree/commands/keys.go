package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-i2p/ec"
	"github.com/go-i2p/ec/internal/secure"
	"github.com/go-i2p/ec/untrusted"
)

func (c *cli) newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Args:  cobra.NoArgs,
		RunE:  c.runKeygen,
	}
}

func (c *cli) runKeygen(cmd *cobra.Command, args []string) error {
	alg, err := lookupAlgorithm(c.config.Curve)
	if err != nil {
		return err
	}
	curve := alg.Curve()

	kp, err := ec.GenerateKeyPair(curve, nil)
	if err != nil {
		c.logger.WithField("curve", curve).Error("key generation failed")
		return fmt.Errorf("generating key: %w", err)
	}
	defer kp.Zeroize()

	priv, err := kp.PrivateKey().Bytes(curve)
	if err != nil {
		return err
	}
	pub, err := kp.PublicKey(curve)
	if err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"curve":      curve,
		"public_len": len(pub),
	}).Debug("generated key pair")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "private: %s\n", hex.EncodeToString(priv))
	fmt.Fprintf(out, "public:  %s\n", hex.EncodeToString(pub))
	return nil
}

func (c *cli) newPubkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
		Args:  cobra.NoArgs,
		RunE:  c.runPubkey,
	}
	cmd.Flags().String("key", "", "hex-encoded private key")
	return cmd
}

func (c *cli) runPubkey(cmd *cobra.Command, args []string) error {
	alg, err := lookupAlgorithm(c.config.Curve)
	if err != nil {
		return err
	}
	curve := alg.Curve()

	kp, err := c.importKeyPair(curve)
	if err != nil {
		return err
	}
	defer kp.Zeroize()

	pub, err := kp.PublicKey(curve)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(pub))
	return nil
}

// importKeyPair decodes the configured private key for curve. The decoded
// bytes are wiped before returning.
func (c *cli) importKeyPair(curve *ec.Curve) (ec.KeyPair, error) {
	raw, err := hex.DecodeString(c.config.Key)
	if err != nil {
		return ec.KeyPair{}, fmt.Errorf("decoding --key: %w", err)
	}
	defer secure.Zero(raw)

	kp, err := ec.KeyPairFromPrivateKeyBytes(curve, untrusted.New(raw))
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"curve":   curve,
			"key_len": len(raw),
		}).Warn("rejected private key")
		return ec.KeyPair{}, fmt.Errorf("importing private key: %w", err)
	}
	return kp, nil
}
