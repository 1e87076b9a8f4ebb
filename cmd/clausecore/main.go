// Package main is a thin demo entry point exercising the clausecore
// library end to end, without inventing a wire format (spec.md §6 rules
// out a CLI/wire protocol for the core itself).
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
