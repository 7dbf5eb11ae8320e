// Package main is the entry point for the hookrun CLI.
package main

import (
	"os"

	"github.com/hookworks/hookrun/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
