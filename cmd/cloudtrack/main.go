// Package main is the entry point for the cloudtrack server.
package main

import (
	"os"

	"github.com/lvnb04/cloudtrack/cmd/cloudtrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
