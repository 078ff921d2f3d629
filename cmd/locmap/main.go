// Package main provides the entry point for the locmap CLI tool.
package main

import (
	"github.com/geostation/locmap/cmd/locmap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
