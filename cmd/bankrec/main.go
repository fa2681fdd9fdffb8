package main

import (
	"os"

	"github.com/bankrec-dev/bankrec/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
