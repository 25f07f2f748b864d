// Package main is the entry point for the imgconv CLI: image format
// conversion plus making image-based PDFs.
package main

import (
	"fmt"
	"os"
)

func main() {
	// Errors surface here, not in run(): cobra is silenced, so flag and
	// argument errors would otherwise exit without a message.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR]: %v\n", err)
		os.Exit(1)
	}
}
