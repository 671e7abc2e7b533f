// Package main is the entry point for the faceit-stats server and CLI.
package main

import "github.com/openfrag/faceit-stats/internal/cli"

func main() {
	cli.Execute()
}
