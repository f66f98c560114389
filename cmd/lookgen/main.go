// Package main provides the lookgen CLI.
package main

import (
	"github.com/leapstack-labs/lookgen/internal/cli"
)

func main() {
	cli.Execute()
}
