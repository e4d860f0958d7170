package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func newTestViper(values map[string]string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	keyring.MockInit()

	cfg, err := Load(newTestViper(nil))
	require.NoError(t, err)

	assert.False(t, cfg.Registry.DirectMode)
	assert.Equal(t, []registry.EntityType{registry.EntityAccount}, cfg.Registry.Entities())
	assert.Equal(t, "INFO", cfg.Registry.LogLevel)
	assert.Equal(t, firefly.DefaultBaseURL, cfg.Client.BaseURL)
	assert.Equal(t, firefly.DefaultTimeout, cfg.Client.Timeout)
	assert.False(t, cfg.Client.InsecureSkipVerify)
	assert.Empty(t, cfg.Client.Token)
	assert.Empty(t, cfg.TokenSource)
	assert.False(t, cfg.UtilityTools)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromValues(t *testing.T) {
	keyring.MockInit()

	cfg, err := Load(newTestViper(map[string]string{
		KeyDirectMode:       "yes",
		KeyEnabledEntities:  "Account, budget ,bogus",
		KeyLogLevel:         "debug",
		KeyAPIURL:           "https://ledger.example/api/v1",
		KeyAPIToken:         "token-123",
		KeyDisableSSLVerify: "TRUE",
		KeyTimeout:          "5",
		KeyUtilityTools:     "on",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Registry.DirectMode)
	assert.Equal(t, []string{"account", "budget"}, cfg.Registry.EntityNames())
	assert.Equal(t, "DEBUG", cfg.Registry.LogLevel)
	assert.Equal(t, "https://ledger.example/api/v1", cfg.Client.BaseURL)
	assert.Equal(t, "token-123", cfg.Client.Token)
	assert.Equal(t, TokenFromConfig, cfg.TokenSource)
	assert.True(t, cfg.Client.InsecureSkipVerify)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.True(t, cfg.UtilityTools)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "bogus")
}

func TestLoadReadsEnvironment(t *testing.T) {
	keyring.MockInit()
	t.Setenv("FIREFLY_DIRECT_MODE", "1")
	t.Setenv("FIREFLY_ENABLED_ENTITIES", "all")
	t.Setenv("FIREFLY_API_TOKEN", "env-token")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.True(t, cfg.Registry.DirectMode)
	assert.Len(t, cfg.Registry.Entities(), len(registry.AllEntityTypes()))
	assert.Equal(t, "env-token", cfg.Client.Token)
}

func TestLoadIsNotMemoised(t *testing.T) {
	keyring.MockInit()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	t.Setenv("FIREFLY_ENABLED_ENTITIES", "tag")
	v, err := NewViper("")
	require.NoError(t, err)
	first, err := Load(v)
	require.NoError(t, err)

	t.Setenv("FIREFLY_ENABLED_ENTITIES", "bill")
	second, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"tag"}, first.Registry.EntityNames())
	assert.Equal(t, []string{"bill"}, second.Registry.EntityNames())
}

func TestSSLFlagMustBeBoolean(t *testing.T) {
	tests := []struct {
		value    string
		insecure bool
		warns    bool
	}{
		{"", false, false},
		{"false", false, false},
		{"true", true, false},
		{"True", true, false},
		{"yes", false, true},
		{"0", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			insecure, warning := parseSSLFlag(tt.value)
			assert.Equal(t, tt.insecure, insecure)
			assert.Equal(t, tt.warns, warning != "")
		})
	}
}

func TestParseTimeout(t *testing.T) {
	d, err := parseTimeout("1m")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, d)

	d, err = parseTimeout("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, d)

	_, err = parseTimeout("soon")
	assert.Error(t, err)

	_, err = parseTimeout("-3s")
	assert.Error(t, err)
}

func TestTokenFallsBackToKeyring(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, SaveToken("stored-token"))

	cfg, err := Load(newTestViper(nil))
	require.NoError(t, err)
	assert.Equal(t, "stored-token", cfg.Client.Token)
	assert.Equal(t, TokenFromKeyring, cfg.TokenSource)

	cfg, err = Load(newTestViper(map[string]string{KeyAPIToken: "explicit"}))
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Client.Token)

	require.NoError(t, DeleteToken())
	require.NoError(t, DeleteToken())
	token, err := LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.Error(t, SaveToken("  "))
}

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenWarning(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	week := 7 * 24 * time.Hour

	expired := signed(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	assert.Contains(t, TokenWarning(expired, now, week), "expired")

	soon := signed(t, jwt.MapClaims{"exp": now.Add(48 * time.Hour).Unix()})
	assert.Contains(t, TokenWarning(soon, now, week), "expires on 2026-03-03")

	later := signed(t, jwt.MapClaims{"exp": now.Add(90 * 24 * time.Hour).Unix()})
	assert.Empty(t, TokenWarning(later, now, week))

	assert.Empty(t, TokenWarning(signed(t, jwt.MapClaims{"sub": "1"}), now, week))
	assert.Empty(t, TokenWarning("not-a-jwt", now, week))
	assert.Empty(t, TokenWarning("", now, week))
}

func TestFileSaveAndRead(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "firefly-mcp", "firefly-mcp.yaml"), path)

	f := &File{
		APIURL:          "https://ledger.example/api/v1",
		DirectMode:      true,
		EnabledEntities: "account,bill",
		Timeout:         "10s",
	}
	require.NoError(t, f.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	keyring.MockInit()
	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Registry.DirectMode)
	assert.Equal(t, []string{"account", "bill"}, cfg.Registry.EntityNames())
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FIREFLY_TEST_DOTENV=from-file\n"), 0600))
	t.Setenv("FIREFLY_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("FIREFLY_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("FIREFLY_TEST_DOTENV"))
}
