package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

func newExplainCmd() *cobra.Command {
	var (
		streamName string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "explain CODE",
		Short: "Show how an error code is classified",
		Long: `Classify a platform error code and print both renderings.

CODE is a number or a symbolic name listed by "errno list", e.g. 2 or ENOENT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}

			exc := pcsxerrors.FromErrno(streamName, code)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(pcsxerrors.ToDiagnosticJSON(exc))
			}
			return printExplanation(cmd.OutOrStdout(), code, exc)
		},
	}

	cmd.Flags().StringVar(&streamName, "stream", "", "Resource name to attach to the error")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

// parseCode accepts a decimal code or a known symbolic name.
func parseCode(arg string) (int, error) {
	if code, err := strconv.Atoi(arg); err == nil {
		return code, nil
	}

	for _, info := range pcsxerrors.KnownErrnos() {
		if strings.EqualFold(info.Name, arg) {
			return info.Code, nil
		}
	}
	return 0, pcsxerrors.Newf(pcsxerrors.RuntimeError, "unknown error code %q", arg)
}

func printExplanation(w io.Writer, code int, exc pcsxerrors.Exception) error {
	name := pcsxerrors.ErrnoName(code)
	if name == "" {
		name = "-"
	}

	_, err := fmt.Fprintf(w, "Code:    %d (%s)\nVariant: %s\nKind:    %s\n\nDiagnostic:\n%s\n\nDisplay:\n%s\n",
		code, name, exc.Variant().String(), exc.Kind(), exc.FormatDiagnostic(), exc.FormatDisplay())
	return err
}
