package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the error codes with an explicit classification",
		Long:  "List the platform error codes with an explicit classification. Any other code is a bad stream.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Code", "Name", "Variant", "Kind", "Description")

			for _, info := range pcsxerrors.KnownErrnos() {
				if err := table.Append(
					strconv.Itoa(info.Code),
					info.Name,
					info.Variant.String(),
					string(info.Variant.Kind()),
					info.Description,
				); err != nil {
					return pcsxerrors.Wrap(err, "building table")
				}
			}

			return table.Render()
		},
	}
}
