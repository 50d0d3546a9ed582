package main

import (
	"os"

	"github.com/meghna/questly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
