package main

import (
	"os"

	"github.com/parham-yz/secretary-in-terminal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
