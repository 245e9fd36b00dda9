// Command skiff is a thin driver for the Skiff language frontend: it reads
// a source file and prints its token stream or its AST.
package main

import (
	"os"

	"github.com/pacer/skiff/cmd/skiff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
