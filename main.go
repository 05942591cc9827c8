package main

import (
	"os"

	"github.com/samuelfneumann/tdlearn/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
