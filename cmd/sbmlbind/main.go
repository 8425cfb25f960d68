// Command sbmlbind checks, rewrites and queries SBML, SED-ML and SBGN-ML
// documents, and prints the diagnostic tables.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "sbmlbind:", err)
		}
		os.Exit(1)
	}
}
