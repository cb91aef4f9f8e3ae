package main

import (
	"os"

	"github.com/go-i2p/ec/cmd/ecagree/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
