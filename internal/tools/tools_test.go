package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func allConfig() registry.Config {
	cfg, _ := registry.ParseConfig(registry.RawConfig{EnabledEntities: "all"})
	return cfg
}

func TestOperationCounts(t *testing.T) {
	providers, err := Providers(firefly.NewClient(firefly.Config{}))
	require.NoError(t, err)

	counts := map[registry.EntityType]int{}
	for _, p := range providers {
		counts[p.Entity()] = len(p.Operations())
	}
	assert.Equal(t, map[registry.EntityType]int{
		registry.EntityAccount:     8,
		registry.EntityTransaction: 9,
		registry.EntityBudget:      13,
		registry.EntityCategory:    7,
		registry.EntityTag:         7,
		registry.EntityRule:        7,
		registry.EntityRuleGroup:   8,
		registry.EntityBill:        8,
		registry.EntityPiggyBank:   7,
	}, counts)
}

func TestEveryOperationHasSchemaAndTags(t *testing.T) {
	providers, err := Providers(firefly.NewClient(firefly.Config{}))
	require.NoError(t, err)
	converter := registry.NewSchemaConverter(quietLogger())

	for _, p := range providers {
		for _, op := range p.Operations() {
			name := string(p.Entity()) + "." + op.Name()
			assert.NotEmpty(t, op.Description(), name)
			assert.True(t, op.HasTag("read") || op.HasTag("write"), name)

			schema := converter.ToJSONSchema(op.Request())
			assert.Equal(t, "object", schema["type"], name)
			_, err := json.Marshal(schema)
			assert.NoError(t, err, name)
		}
	}
}

func TestSetupRespectsEnabledEntities(t *testing.T) {
	cfg, _ := registry.ParseConfig(registry.RawConfig{EnabledEntities: "account,budget"})
	reg := registry.New(cfg, quietLogger())

	n, err := Setup(reg, firefly.NewClient(firefly.Config{}), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 21, reg.Stats().Operations)
}

func TestSetupAll(t *testing.T) {
	reg := registry.New(allConfig(), quietLogger())

	n, err := Setup(reg, firefly.NewClient(firefly.Config{}), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, 74, reg.Stats().Operations)
}

func TestExecuteAgainstServer(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"type":"accounts","id":"1","attributes":{"name":"Checking"}}],"meta":{}}`))
	}))
	defer server.Close()

	reg := registry.New(allConfig(), quietLogger())
	_, err := Setup(reg, firefly.NewClient(firefly.Config{BaseURL: server.URL}), quietLogger())
	require.NoError(t, err)

	result, err := reg.ExecuteOperation(context.Background(), "account", "list", map[string]any{"limit": 5})
	require.NoError(t, err)

	assert.Equal(t, "/accounts", gotPath)
	assert.Equal(t, "limit=5&type=all", gotQuery)

	doc, ok := result.(map[string]any)
	require.True(t, ok)
	data := doc["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "1", data[0].(map[string]any)["id"])
}

func TestExecuteSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Resource not found"}`))
	}))
	defer server.Close()

	reg := registry.New(allConfig(), quietLogger())
	_, err := Setup(reg, firefly.NewClient(firefly.Config{BaseURL: server.URL}), quietLogger())
	require.NoError(t, err)

	_, err = reg.ExecuteOperation(context.Background(), "bill", "get", map[string]any{"id": "42"})
	var regErr *registry.RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Contains(t, err.Error(), "404 – Resource not found")
	assert.True(t, firefly.IsNotFound(err))
}

func TestExecuteValidatesBeforeCalling(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	reg := registry.New(allConfig(), quietLogger())
	_, err := Setup(reg, firefly.NewClient(firefly.Config{BaseURL: server.URL}), quietLogger())
	require.NoError(t, err)

	_, err = reg.ExecuteOperation(context.Background(), "transaction", "bulk_tag", map[string]any{
		"transaction_ids": []any{"x"},
	})
	var invalid *registry.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Issues(), 2)
	assert.False(t, called)
}

func TestDiscoveryIsIdempotent(t *testing.T) {
	reg := registry.New(allConfig(), quietLogger())
	_, err := Setup(reg, firefly.NewClient(firefly.Config{}), quietLogger())
	require.NoError(t, err)
	reg.Seal()

	first, err := reg.ListOperations("")
	require.NoError(t, err)
	second, err := reg.ListOperations("")
	require.NoError(t, err)
	require.Len(t, first, 74)
	assert.Equal(t, first, second)

	for _, info := range first {
		a, err := reg.OperationSchema(info.Entity, info.Operation)
		require.NoError(t, err, info.Name)
		b, err := reg.OperationSchema(info.Entity, info.Operation)
		require.NoError(t, err, info.Name)
		assert.Equal(t, a, b, info.Name)
	}
}

// sampleValue builds a value that satisfies a generated schema node,
// filling in only required object properties.
func sampleValue(node map[string]any) any {
	if enum, ok := node["enum"].([]any); ok && len(enum) > 0 {
		return enum[0]
	}
	switch node["type"] {
	case "string":
		return "1"
	case "integer":
		return 1
	case "number":
		return 1.5
	case "boolean":
		return true
	case "array":
		items, _ := node["items"].(map[string]any)
		return []any{sampleValue(items)}
	case "object":
		return sampleObject(node)
	}
	return "1"
}

func sampleObject(node map[string]any) map[string]any {
	out := map[string]any{}
	props, _ := node["properties"].(map[string]any)
	required, _ := node["required"].([]string)
	for _, name := range required {
		prop, _ := props[name].(map[string]any)
		out[name] = sampleValue(prop)
	}
	return out
}

func TestRequiredFieldsAcrossOperations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	reg := registry.New(allConfig(), quietLogger())
	_, err := Setup(reg, firefly.NewClient(firefly.Config{BaseURL: server.URL}), quietLogger())
	require.NoError(t, err)
	ops, err := reg.ListOperations("")
	require.NoError(t, err)

	ctx := context.Background()
	withRequired := 0
	for _, info := range ops {
		t.Run(info.Name, func(t *testing.T) {
			schema, err := reg.OperationSchema(info.Entity, info.Operation)
			require.NoError(t, err)

			params := sampleObject(schema)
			_, err = reg.ExecuteOperation(ctx, info.Entity, info.Operation, params)
			var invalid *registry.ValidationError
			assert.False(t, errors.As(err, &invalid), "complete params rejected: %v", err)

			required, _ := schema["required"].([]string)
			if len(required) > 0 {
				withRequired++
			}
			sort.Strings(required)
			for _, field := range required {
				partial := sampleObject(schema)
				delete(partial, field)

				_, err := reg.ExecuteOperation(ctx, info.Entity, info.Operation, partial)
				require.ErrorAs(t, err, &invalid, field)
				assert.Contains(t, err.Error(), field+": field required")
			}
		})
	}
	assert.Positive(t, withRequired)
}
