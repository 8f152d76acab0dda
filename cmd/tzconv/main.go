// Package main provides the entry point for the tzconv command line tool
package main

import (
	"os"
	"tzconv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
