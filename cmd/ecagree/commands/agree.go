package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-i2p/ec/agreement"
	"github.com/go-i2p/ec/internal/secure"
	"github.com/go-i2p/ec/untrusted"
)

func (c *cli) newAgreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agree",
		Short: "Compute a shared secret with a peer's public key",
		Long: `Compute the Diffie-Hellman shared secret between --key and --peer.
With --length > 0 the secret is run through HKDF-SHA256 with --salt and --info
and the derived key is printed instead of the raw secret.`,
		Args: cobra.NoArgs,
		RunE: c.runAgree,
	}
	cmd.Flags().String("key", "", "hex-encoded private key")
	cmd.Flags().String("peer", "", "hex-encoded peer public key")
	cmd.Flags().String("salt", "", "HKDF salt")
	cmd.Flags().String("info", "", "HKDF info")
	cmd.Flags().Int("length", 0, "HKDF-SHA256 output length in bytes, 0 for the raw secret")
	return cmd
}

func (c *cli) runAgree(cmd *cobra.Command, args []string) error {
	if c.config.Length < 0 {
		return fmt.Errorf("--length must not be negative")
	}
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

	peer, err := hex.DecodeString(c.config.Peer)
	if err != nil {
		return fmt.Errorf("decoding --peer: %w", err)
	}

	secret := make([]byte, alg.SharedSecretLen())
	defer secure.Zero(secret)
	if err := alg.Agree(secret, kp.PrivateKey(), untrusted.New(peer)); err != nil {
		c.logger.WithFields(logrus.Fields{
			"curve":    curve,
			"peer_len": len(peer),
		}).Warn("key agreement failed")
		return fmt.Errorf("key agreement: %w", err)
	}

	result := secret
	if c.config.Length > 0 {
		derived, err := agreement.HKDF(sha256.New, []byte(c.config.Salt), []byte(c.config.Info), c.config.Length)(secret)
		if err != nil {
			return fmt.Errorf("deriving key: %w", err)
		}
		defer secure.Zero(derived)
		result = derived
	}

	c.logger.WithFields(logrus.Fields{
		"curve":   curve,
		"derived": c.config.Length > 0,
		"length":  len(result),
	}).Debug("agreement complete")

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(result))
	return nil
}
