// Command bignumber evaluates arbitrary precision expressions from the command
// line.
package main

import (
	"os"

	"github.com/Ask4r/BigNumber/cmd/bignumber/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
