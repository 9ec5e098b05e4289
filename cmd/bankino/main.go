package main

import (
	"os"

	"github.com/tidominer/bankino/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
