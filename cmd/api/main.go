// Package main provides the CLI entry point for the eats backend.
package main

import (
	"os"

	"eats-backend/cmd/api/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
