package main

import (
	"os"

	"payseal/cmd/payseal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
