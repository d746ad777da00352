package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
	"github.com/phillipmacon/pcsx2/report"
	"github.com/phillipmacon/pcsx2/stream"
)

// localTarget picks the filesystem root and the root-relative path for name.
// An absolute name is opened from its volume root unless --root was given,
// since the local filesystem is chrooted.
func localTarget(root, name string, rootSet bool) (string, string) {
	if rootSet || !filepath.IsAbs(name) {
		return root, name
	}

	base := filepath.VolumeName(name) + string(filepath.Separator)
	rel, err := filepath.Rel(base, name)
	if err != nil {
		return root, name
	}
	return base, rel
}

// renamed reports err under the name the user typed.
func renamed(err error, name string) error {
	var exc pcsxerrors.Exception
	if pcsxerrors.As(err, &exc) && exc.Variant().IsStream() {
		return exc.WithStreamName(name)
	}
	return err
}

func newOpenCmd(opts *globalOptions) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "open PATH",
		Short: "Open a file and report any failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			fsRoot, rel := localTarget(root, name, cmd.Flags().Changed("root"))
			fsys := stream.NewLocal(fsRoot)

			reporter := report.NewReporter(
				report.WithLogger(opts.logger),
				report.WithPresenter(report.NewConsolePresenter(cmd.ErrOrStderr())),
			)

			f, err := fsys.Open(rel)
			if err != nil {
				err = renamed(err, name)
				if rerr := reporter.Report(ctx, err); rerr != nil {
					return rerr
				}
				return pcsxerrors.Silence(err)
			}
			defer func() { _ = f.Close() }()

			info, err := f.Stat()
			if err != nil {
				return renamed(err, name)
			}

			opts.logger.Debug(ctx, "opened", "stream", name, "size", info.Size())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes\n", name, info.Size())
			return err
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Directory PATH is resolved against")

	return cmd
}
