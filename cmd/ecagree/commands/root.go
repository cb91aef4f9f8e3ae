// Package commands implements the ecagree command line: generating keys,
// deriving public keys and running key agreement for the curves supported by
// package ec.
package commands

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type cli struct {
	v      *viper.Viper
	config *CLIConfig
	logger *logrus.Logger
}

// NewRootCmd returns the ecagree root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	c := &cli{
		v:      viper.New(),
		config: NewDefaultCLIConfig(),
	}

	rootCmd := &cobra.Command{
		Use:               "ecagree",
		Short:             "Elliptic-curve key generation and agreement",
		PersistentPreRunE: c.loadConfig,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().String("curve", c.config.Curve, "curve25519, p256 or p384")
	rootCmd.PersistentFlags().String("log", c.config.LogLevel, "debug, info, warn, error")

	rootCmd.AddCommand(
		c.newKeygenCmd(),
		c.newPubkeyCmd(),
		c.newAgreeCmd(),
		c.newInfoCmd(),
	)
	return rootCmd
}

/*******************************************************************************
* CONFIG
*******************************************************************************/

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	c.v.SetEnvPrefix("ECAGREE")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	conf := NewDefaultCLIConfig()
	if err := c.v.Unmarshal(conf); err != nil {
		return err
	}
	c.config = conf

	c.logger = logrus.New()
	c.logger.Out = cmd.ErrOrStderr()
	c.logger.Level = logLevel(c.config.LogLevel)

	c.logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"curve":   c.config.Curve,
		"length":  c.config.Length,
		"log":     c.config.LogLevel,
	}).Debug("RUN")

	return nil
}

func logLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
