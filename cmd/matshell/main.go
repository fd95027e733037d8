package main

import (
	"os"

	"github.com/katalvlaran/matshell/cmd/matshell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
