package main

import (
	"os"

	"github.com/npillmayer/notation/cmd/notation/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
