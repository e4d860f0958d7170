package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema <entity> <operation>",
		Short: "Print the parameter schema of an operation",
		Example: `  firefly-mcp schema account list
  firefly-mcp schema budget create_limit -o yaml --entities budget`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}
			if format == OutputFormatTable {
				return fmt.Errorf("schema output must be json or yaml")
			}

			a, err := newApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.close()

			schema, err := a.registry.OperationSchema(args[0], args[1])
			if err != nil {
				return err
			}
			return NewDataWriter(cmd.OutOrStdout(), format).WriteStruct(schema)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format (json, yaml)")

	return cmd
}
