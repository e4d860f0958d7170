// Package config loads the server configuration from the environment,
// an optional YAML file and the OS keyring.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

const (
	// EnvPrefix is prepended to every key when read from the environment,
	// e.g. FIREFLY_API_URL.
	EnvPrefix = "FIREFLY"

	// FileName is the config file name without extension.
	FileName = "firefly-mcp"

	// KeyringService and KeyringUser locate the API token saved by
	// "config init".
	KeyringService = "firefly-mcp"
	KeyringUser    = "api_token"
)

// Configuration keys.
const (
	KeyDirectMode       = "direct_mode"
	KeyEnabledEntities  = "enabled_entities"
	KeyLogLevel         = "log_level"
	KeyLogFile          = "log_file"
	KeyAPIURL           = "api_url"
	KeyAPIToken         = "api_token"
	KeyDisableSSLVerify = "disable_ssl_verify"
	KeyTimeout          = "timeout"
	KeyUtilityTools     = "utility_tools"
	KeyHTTPAddr         = "http_addr"
	KeyHTTPToken        = "http_token"
)

// Token sources reported in Config.TokenSource.
const (
	TokenFromConfig  = "config"
	TokenFromKeyring = "keyring"
)

// Config is the fully resolved process configuration.
type Config struct {
	Registry     registry.Config
	Client       firefly.Config
	LogFile      string
	UtilityTools bool
	HTTPAddr     string
	HTTPToken    string

	// TokenSource tells where Client.Token came from; empty when there is
	// no token.
	TokenSource string

	// Warnings collects problems that fell back to a default. They are
	// logged once logging is set up.
	Warnings []string
}

// File is the on-disk YAML form written by "config init".
type File struct {
	APIURL           string `yaml:"api_url,omitempty"`
	DirectMode       bool   `yaml:"direct_mode,omitempty"`
	EnabledEntities  string `yaml:"enabled_entities,omitempty"`
	LogLevel         string `yaml:"log_level,omitempty"`
	LogFile          string `yaml:"log_file,omitempty"`
	DisableSSLVerify bool   `yaml:"disable_ssl_verify,omitempty"`
	Timeout          string `yaml:"timeout,omitempty"`
	UtilityTools     bool   `yaml:"utility_tools,omitempty"`
	HTTPAddr         string `yaml:"http_addr,omitempty"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDirectMode, "false")
	v.SetDefault(KeyEnabledEntities, "")
	v.SetDefault(KeyLogLevel, "INFO")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyAPIURL, firefly.DefaultBaseURL)
	v.SetDefault(KeyAPIToken, "")
	v.SetDefault(KeyDisableSSLVerify, "false")
	v.SetDefault(KeyTimeout, firefly.DefaultTimeout.String())
	v.SetDefault(KeyUtilityTools, "false")
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyHTTPToken, "")
}

// NewViper returns a viper instance bound to the FIREFLY_ environment and,
// when present, the config file. cfgFile overrides the search path.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load resolves the configuration from v. It is recomputed on every call.
func Load(v *viper.Viper) (*Config, error) {
	regCfg, warnings := registry.ParseConfig(registry.RawConfig{
		DirectMode:      v.GetString(KeyDirectMode),
		EnabledEntities: v.GetString(KeyEnabledEntities),
		LogLevel:        v.GetString(KeyLogLevel),
	})

	insecure, warning := parseSSLFlag(v.GetString(KeyDisableSSLVerify))
	if warning != "" {
		warnings = append(warnings, warning)
	}

	timeout, err := parseTimeout(v.GetString(KeyTimeout))
	if err != nil {
		warnings = append(warnings, err.Error())
		timeout = firefly.DefaultTimeout
	}

	cfg := &Config{
		Registry: regCfg,
		Client: firefly.Config{
			BaseURL:            strings.TrimSpace(v.GetString(KeyAPIURL)),
			Token:              strings.TrimSpace(v.GetString(KeyAPIToken)),
			InsecureSkipVerify: insecure,
			Timeout:            timeout,
		},
		LogFile:      strings.TrimSpace(v.GetString(KeyLogFile)),
		UtilityTools: registry.ParseBool(v.GetString(KeyUtilityTools)),
		HTTPAddr:     v.GetString(KeyHTTPAddr),
		HTTPToken:    v.GetString(KeyHTTPToken),
	}
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = firefly.DefaultBaseURL
	}

	if cfg.Client.Token != "" {
		cfg.TokenSource = TokenFromConfig
	} else {
		token, err := LoadToken()
		switch {
		case err != nil:
			warnings = append(warnings, err.Error())
		case token != "":
			cfg.Client.Token = token
			cfg.TokenSource = TokenFromKeyring
		}
	}

	cfg.Warnings = warnings
	return cfg, nil
}

// parseSSLFlag accepts only "true" and "false"; anything else keeps TLS
// verification on and returns a warning.
func parseSSLFlag(s string) (bool, string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false":
		return false, ""
	case "true":
		return true, ""
	}
	return false, fmt.Sprintf("%s_%s must be 'true' or 'false', got %q; keeping TLS verification on",
		EnvPrefix, strings.ToUpper(KeyDisableSSLVerify), s)
}

// parseTimeout accepts Go durations and plain seconds.
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return firefly.DefaultTimeout, nil
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d, nil
	}
	var secs float64
	if _, err := fmt.Sscanf(s, "%g", &secs); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return 0, fmt.Errorf("invalid %s %q, using %s", KeyTimeout, s, firefly.DefaultTimeout)
}

// LoadToken reads the API token from the OS keyring. A missing entry is
// not an error.
func LoadToken() (string, error) {
	token, err := keyring.Get(KeyringService, KeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read API token from keyring: %w", err)
	}
	return token, nil
}

// SaveToken stores the API token in the OS keyring.
func SaveToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("cannot save an empty token")
	}
	if err := keyring.Set(KeyringService, KeyringUser, token); err != nil {
		return fmt.Errorf("failed to save API token: %w", err)
	}
	return nil
}

// DeleteToken removes the API token from the OS keyring.
func DeleteToken() error {
	err := keyring.Delete(KeyringService, KeyringUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete API token: %w", err)
	}
	return nil
}

// TokenWarning reports an expired or soon expiring JWT. Tokens that are not
// JWTs or carry no exp claim produce no warning.
func TokenWarning(token string, now time.Time, within time.Duration) string {
	if token == "" {
		return ""
	}
	exp, ok, err := firefly.TokenExpiry(token)
	if err != nil || !ok {
		return ""
	}
	if !exp.After(now) {
		return fmt.Sprintf("API token expired on %s", exp.Format(time.DateOnly))
	}
	if exp.Sub(now) <= within {
		return fmt.Sprintf("API token expires on %s", exp.Format(time.DateOnly))
	}
	return ""
}

// Dir returns the per-user config directory.
func Dir() (string, error) {
	var configDir string

	// Check XDG_CONFIG_HOME first for testing and Linux compatibility
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		configDir = xdgConfig
	} else {
		var err error
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get config directory: %w", err)
		}
	}
	return filepath.Join(configDir, FileName), nil
}

// DefaultPath is where "config init" writes the config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName+".yaml"), nil
}

// Save writes f as YAML to path, creating the directory when needed.
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ReadFile loads a config file written by Save.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &f, nil
}
