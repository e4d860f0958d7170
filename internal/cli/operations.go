package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func newOperationsCmd() *cobra.Command {
	var (
		entity string
		output string
	)

	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"ops"},
		Short:   "List the operations of the enabled entities",
		Example: `  firefly-mcp operations
  firefly-mcp operations --entity budget -o json
  firefly-mcp operations --entities all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}

			var filter registry.EntityType
			if entity != "" {
				if filter, err = registry.ParseEntityType(strings.ToLower(entity)); err != nil {
					return err
				}
			}

			a, err := newApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.close()

			ops, err := a.registry.ListOperations(filter)
			if err != nil {
				return err
			}
			return writeOperations(cmd.OutOrStdout(), ops, format)
		},
	}

	cmd.Flags().StringVarP(&entity, "entity", "e", "", "only list operations of this entity type")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

func writeOperations(w io.Writer, ops []registry.OperationInfo, format OutputFormat) error {
	dw := NewDataWriter(w, format)
	if format != OutputFormatTable {
		return dw.WriteStruct(ops)
	}

	table := NewTableBuilder("OPERATION", "TAGS", "DESCRIPTION")
	for _, op := range ops {
		table.AddRow(op.Name, strings.Join(op.Tags, ","), op.Description)
	}
	return table.Write(dw)
}
