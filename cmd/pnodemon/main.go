package main

import (
	"os"

	"github.com/xandeum/pnodemon/cmd/pnodemon/commands"
)

func main() {
	rootCmd := commands.RootCmd

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
