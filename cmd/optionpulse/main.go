package main

import (
	"os"

	"github.com/nravi/optionpulse/cmd/optionpulse/commands"
)

// main is the entry point for the optionpulse CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
