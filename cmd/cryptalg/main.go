package main

import (
	"os"

	"github.com/kingaa1/Cryptography-algorithms/cmd/cryptalg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
