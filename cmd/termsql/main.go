// Package main provides the termsql command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/termsql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
