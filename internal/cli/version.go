package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}
			return NewKeyValueBuilder("firefly-mcp").
				Add("version", version).
				Add("commit", commit).
				Add("built", buildDate).
				Add("go", runtime.Version()).
				Write(NewDataWriter(cmd.OutOrStdout(), format))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}
