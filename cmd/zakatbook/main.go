package main

import (
	"os"

	"github.com/zakatbook-dev/zakatbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
