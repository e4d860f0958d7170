package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/firefly-mcp/firefly-mcp/internal/config"
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the firefly-mcp configuration",
	}
	cmd.AddCommand(
		newConfigInitCmd(),
		newConfigShowCmd(),
		newConfigForgetTokenCmd(),
	)
	return cmd
}

// initAnswers are the values collected by "config init".
type initAnswers struct {
	APIURL         string
	Token          string
	Entities       []string
	DirectMode     bool
	DisableSSL     bool
	StoreInKeyring bool
	ConfigFilePath string
}

func entityOptions() []string {
	all := registry.AllEntityTypes()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = string(e)
	}
	return names
}

func newConfigInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a config file",
		Long: `Ask for the Firefly III URL, API token and enabled entities, write them
to a YAML config file and store the token in the OS keyring.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			answers, err := askInit(path)
			if err != nil {
				return err
			}
			return writeInit(cmd.OutOrStdout(), answers)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "where to write the config file")

	return cmd
}

func askInit(path string) (*initAnswers, error) {
	answers := &initAnswers{ConfigFilePath: path}

	if err := survey.AskOne(&survey.Input{
		Message: "Firefly III API URL:",
		Default: firefly.DefaultBaseURL,
	}, &answers.APIURL, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Password{
		Message: "Personal access token:",
	}, &answers.Token); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Entities to enable:",
		Options: entityOptions(),
		Default: []string{string(registry.EntityAccount)},
	}, &answers.Entities); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Expose one tool per operation (direct mode)?",
		Default: false,
	}, &answers.DirectMode); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Disable TLS certificate verification (self-signed servers)?",
		Default: false,
	}, &answers.DisableSSL); err != nil {
		return nil, err
	}

	if answers.Token != "" {
		if err := survey.AskOne(&survey.Confirm{
			Message: "Store the token in the OS keyring?",
			Default: true,
		}, &answers.StoreInKeyring); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

func writeInit(out io.Writer, answers *initAnswers) error {
	f := &config.File{
		APIURL:           strings.TrimSpace(answers.APIURL),
		DirectMode:       answers.DirectMode,
		EnabledEntities:  strings.Join(answers.Entities, ","),
		DisableSSLVerify: answers.DisableSSL,
	}
	if err := f.Save(answers.ConfigFilePath); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, successColor.Sprintf("✓ Wrote %s", answers.ConfigFilePath))

	switch {
	case answers.Token == "":
		_, _ = fmt.Fprintln(out, warnColor.Sprint("⚠ No token given; set FIREFLY_API_TOKEN before serving"))
	case answers.StoreInKeyring:
		if err := config.SaveToken(answers.Token); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, successColor.Sprint("✓ Stored API token in the OS keyring"))
	default:
		_, _ = fmt.Fprintln(out, infoColor.Sprint("ℹ Token not stored; set FIREFLY_API_TOKEN before serving"))
	}
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
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

			return writeConfig(cmd.OutOrStdout(), a.cfg, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

func writeConfig(w io.Writer, cfg *config.Config, format OutputFormat) error {
	return NewKeyValueBuilder("Configuration").
		Add("url", cfg.Client.BaseURL).
		Add("token", maskToken(cfg.Client.Token)).
		AddIf(cfg.TokenSource != "", "token_source", cfg.TokenSource).
		Add("direct_mode", cfg.Registry.DirectMode).
		Add("enabled_entities", strings.Join(cfg.Registry.EntityNames(), ",")).
		Add("log_level", cfg.Registry.LogLevel).
		Add("disable_ssl_verify", cfg.Client.InsecureSkipVerify).
		Add("timeout", cfg.Client.Timeout.String()).
		Add("utility_tools", cfg.UtilityTools).
		Add("http_addr", cfg.HTTPAddr).
		Write(NewDataWriter(w, format))
}

// maskToken keeps the last four characters of a token.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", 8) + token[len(token)-4:]
}

func newConfigForgetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget-token",
		Short: "Remove the API token from the OS keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteToken(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successColor.Sprint("✓ API token removed from the keyring"))
			return nil
		},
	}
}
