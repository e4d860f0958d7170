package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/firefly-mcp/firefly-mcp/internal/config"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

// isolate keeps tests away from the user's config file, keyring and .env.
func isolate(t *testing.T) {
	t.Helper()
	keyring.MockInit()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("FIREFLY_API_TOKEN", "")
	t.Setenv("FIREFLY_LOG_LEVEL", "")
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestOperationsCommand(t *testing.T) {
	isolate(t)
	t.Setenv("FIREFLY_ENABLED_ENTITIES", "account,budget")

	out, err := run(t, newOperationsCmd(), "-o", "json")
	require.NoError(t, err)
	var ops []registry.OperationInfo
	require.NoError(t, json.Unmarshal([]byte(out), &ops))
	assert.Len(t, ops, 21)

	out, err = run(t, newOperationsCmd(), "--entity", "budget", "-o", "json")
	require.NoError(t, err)
	ops = nil
	require.NoError(t, json.Unmarshal([]byte(out), &ops))
	assert.Len(t, ops, 13)
	assert.Equal(t, "budget.create", ops[0].Name)

	out, err = run(t, newOperationsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "OPERATION")
	assert.Contains(t, out, "account.list_piggy_banks")

	_, err = run(t, newOperationsCmd(), "--entity", "wallet")
	var unknown *registry.UnknownEntityError
	assert.ErrorAs(t, err, &unknown)

	_, err = run(t, newOperationsCmd(), "--entity", "tag")
	var notAvailable *registry.EntityNotAvailableError
	assert.ErrorAs(t, err, &notAvailable)
}

func TestSchemaCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, newSchemaCmd(), "account", "get", "-o", "yaml")
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"id"}, schema["required"])

	out, err = run(t, newSchemaCmd(), "account", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"default": "all"`)

	_, err = run(t, newSchemaCmd(), "account", "get", "-o", "table")
	assert.Error(t, err)

	_, err = run(t, newSchemaCmd(), "account", "archive")
	var notFound *registry.OperationNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestPingCommand(t *testing.T) {
	isolate(t)

	var auth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if r.URL.Path != "/about" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"version":"6.1.0","api_version":"2.1.0","os":"Linux","php_version":"8.3.0","driver":"mysql"}}`)
	}))
	t.Cleanup(api.Close)

	t.Setenv("FIREFLY_API_URL", api.URL)
	t.Setenv("FIREFLY_API_TOKEN", "ping-token")

	out, err := run(t, newPingCmd(), "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "Bearer ping-token", auth)

	var about map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &about))
	assert.Equal(t, "6.1.0", about["version"])
	assert.Equal(t, api.URL, about["url"])
}

func TestPingCommandUnauthorized(t *testing.T) {
	isolate(t)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
	}))
	t.Cleanup(api.Close)
	t.Setenv("FIREFLY_API_URL", api.URL)

	_, err := run(t, newPingCmd())
	assert.ErrorContains(t, err, "authentication failed")
	assert.ErrorContains(t, err, "Unauthenticated.")
}

func TestWriteInit(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "firefly-mcp.yaml")

	var out bytes.Buffer
	err := writeInit(&out, &initAnswers{
		APIURL:         " https://ledger.example/api/v1 ",
		Token:          "secret-token",
		Entities:       []string{"account", "bill"},
		DirectMode:     true,
		StoreInKeyring: true,
		ConfigFilePath: path,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Stored API token")

	f, err := config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://ledger.example/api/v1", f.APIURL)
	assert.Equal(t, "account,bill", f.EnabledEntities)
	assert.True(t, f.DirectMode)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-token")

	token, err := config.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "secret-token", token)
}

func TestWriteInitWithoutToken(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	var out bytes.Buffer
	require.NoError(t, writeInit(&out, &initAnswers{APIURL: "https://x/api/v1", ConfigFilePath: path}))
	assert.Contains(t, out.String(), "No token given")

	token, err := config.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestConfigShowMasksToken(t *testing.T) {
	isolate(t)
	t.Setenv("FIREFLY_API_TOKEN", "abcdefghijklmnop")

	out, err := run(t, newConfigShowCmd(), "-o", "json")
	require.NoError(t, err)

	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "********mnop", shown["token"])
	assert.Equal(t, config.TokenFromConfig, shown["token_source"])
	assert.Equal(t, "account", shown["enabled_entities"])
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "(not set)", maskToken(""))
	assert.Equal(t, "*****", maskToken("short"))
	assert.Equal(t, "********6789", maskToken("0123456789"))
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "unknown", "unknown") })

	out, err := run(t, newVersionCmd(), "-o", "json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, "abc123", info["commit"])
	assert.True(t, strings.HasPrefix(info["go"], "go"))
}
