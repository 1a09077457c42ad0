// Command semcore runs the scope-building, type-checking, and
// quadruple-generation pipeline over a single source file.
package main

import (
	"fmt"
	"os"

	"github.com/gerax5/semcore/cmd/semcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
