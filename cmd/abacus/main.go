package main

import (
	"os"

	"abacus/cmd/abacus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
