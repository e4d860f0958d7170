package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
)

func newPingCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the connection to Firefly III",
		Long:  `Calls GET /about with the configured URL and token and prints the server version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}

			a, err := newApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.close()

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			sp.Suffix = " Contacting " + a.client.BaseURL() + "..."
			sp.Start()
			about, err := ping(cmd.Context(), a.client)
			sp.Stop()
			if err != nil {
				if firefly.IsUnauthorized(err) {
					return fmt.Errorf("authentication failed, check the API token: %w", err)
				}
				return fmt.Errorf("failed to reach Firefly III: %w", err)
			}

			if format == OutputFormatTable {
				Success("Connected to Firefly III")
			}
			return writeAbout(cmd.OutOrStdout(), a.client.BaseURL(), about, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

func ping(ctx context.Context, client *firefly.Client) (*firefly.About, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return client.About(ctx)
}

func writeAbout(w io.Writer, baseURL string, about *firefly.About, format OutputFormat) error {
	return NewKeyValueBuilder("Firefly III").
		Add("url", baseURL).
		Add("version", about.Data.Version).
		Add("api_version", about.Data.APIVersion).
		AddIf(about.Data.OS != "", "os", about.Data.OS).
		AddIf(about.Data.PHPVersion != "", "php_version", about.Data.PHPVersion).
		AddIf(about.Data.Driver != "", "driver", about.Data.Driver).
		Write(NewDataWriter(w, format))
}
