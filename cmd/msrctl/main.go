// Package main is the entry point for the msrctl command line tool, a
// client for the maestro schema registry.
package main

import (
	"os"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	setVersion(version, commit)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
