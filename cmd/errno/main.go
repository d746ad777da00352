// Command errno explains platform error codes and file failures the way the
// emulator reports them.
package main

import (
	"fmt"
	"os"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !pcsxerrors.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", pcsxerrors.FormatDiagnostic(err))
		}
		os.Exit(1)
	}
}
