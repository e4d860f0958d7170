package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/firefly-mcp/firefly-mcp/internal/config"
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/logging"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
	"github.com/firefly-mcp/firefly-mcp/internal/tools"
)

// tokenExpiryWindow is how far ahead an expiring API token is reported.
const tokenExpiryWindow = 7 * 24 * time.Hour

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"entities":      config.KeyEnabledEntities,
	"log-level":     config.KeyLogLevel,
	"log-file":      config.KeyLogFile,
	"api-url":       config.KeyAPIURL,
	"direct":        config.KeyDirectMode,
	"addr":          config.KeyHTTPAddr,
	"utility-tools": config.KeyUtilityTools,
}

// app holds everything a command needs to talk to Firefly III.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	client   *firefly.Client
	registry *registry.Registry
	closeLog func() error
}

// newApp loads the configuration and registers the providers. quiet
// lowers logging to warnings for commands whose output goes to a terminal,
// unless a level was asked for.
func newApp(cmd *cobra.Command, quiet bool) (*app, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	v, err := config.NewViper(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Registry.LogLevel,
		File:   cfg.LogFile,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	if quiet && !verbose && !cmd.Flags().Changed("log-level") {
		log.SetLevel(logrus.WarnLevel)
	}
	if verbose && !cmd.Flags().Changed("log-level") {
		log.SetLevel(logrus.DebugLevel)
	}

	for _, w := range cfg.Warnings {
		log.Warn(w)
	}
	if cfg.Client.Token == "" {
		log.Warn("no API token configured; set FIREFLY_API_TOKEN or run \"firefly-mcp config init\"")
	} else if w := config.TokenWarning(cfg.Client.Token, time.Now(), tokenExpiryWindow); w != "" {
		log.Warn(w)
	}
	if v.ConfigFileUsed() != "" {
		log.WithField("file", v.ConfigFileUsed()).Debug("using config file")
	}

	client := firefly.NewClient(cfg.Client, firefly.WithLogger(log))
	reg := registry.New(cfg.Registry, log)
	if _, err := tools.Setup(reg, client, log); err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to set up providers: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		client:   client,
		registry: reg,
		closeLog: closeLog,
	}, nil
}

func (a *app) close() {
	if err := a.closeLog(); err != nil {
		Warn("failed to close log file: %v", err)
	}
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}
