package main

import (
	"os"

	"github.com/oslerlabs/osler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
