package main

import (
	"os"

	"github.com/mkline/tutora/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
