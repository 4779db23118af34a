package main

import (
	"os"

	"github.com/ledgerlens/statement-insights/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
