package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fmueller/wavscribe/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if shouldPrintUsageHint(err) {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
		os.Exit(1)
	}
}

func shouldPrintUsageHint(err error) bool {
	if err == nil {
		return false
	}

	message := strings.ToLower(strings.TrimSpace(err.Error()))
	for _, pattern := range []string{"unknown command", "unknown flag", "unknown shorthand flag"} {
		if strings.Contains(message, pattern) {
			return true
		}
	}
	return false
}
