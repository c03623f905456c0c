package main

import (
	"os"

	"elgamal/cmd/elgamal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
