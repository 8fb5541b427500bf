// Package main provides the keycast command.
//
// keycast inspects the LWJGL 2 to GLFW key translation:
//   - translate: translate LWJGL 2 codes or names
//   - table: export the translation table as YAML
//   - check: compare a stored table against the current translation
//   - options: resolve the key bindings of a game options.txt
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"keycast/internal/logger"
)

var version = "dev" // set by the linker

func main() {
	err := newRootCmd().Execute()
	logger.Sync()

	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError prints err followed by any hints attached to it.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, h := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", h)
	}
}
