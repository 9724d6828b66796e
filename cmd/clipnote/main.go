// Package main provides the entry point for the clipnote CLI tool.
package main

import "github.com/clipnote/clipnote/cmd/clipnote/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
