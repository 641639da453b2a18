// Command fmcore launches the interactive checker REPL. The file-driven
// entry point lives in cmd/fmc.
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"fmcore/repl"
)

func main() {
	if err := repl.Run(os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}
