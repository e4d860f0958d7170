package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type splitInput struct {
	Amount      string   `json:"amount" jsonschema:"required,description=Amount, as a string"`
	Tags        []string `json:"tags,omitempty"`
	BudgetID    *int     `json:"budget_id,omitempty"`
	Reconciled  *bool    `json:"reconciled,omitempty"`
	Description string   `json:"description" jsonschema:"required"`
}

type storeInput struct {
	GroupTitle   string         `json:"group_title,omitempty"`
	Transactions []splitInput   `json:"transactions" jsonschema:"required,description=Splits"`
	Extra        map[string]any `json:"extra,omitempty"`
}

type nestedRequest struct {
	ID    string      `json:"id" jsonschema:"required"`
	Store storeInput  `json:"store" jsonschema:"required"`
	Rate  *float64    `json:"rate,omitempty"`
	Any   interface{} `json:"any,omitempty"`
}

type loop struct {
	Name string `json:"name,omitempty"`
	Next *loop  `json:"next,omitempty"`
}

func TestToJSONSchemaNil(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	assert.Equal(t, map[string]any{"type": "object", "properties": map[string]any{}}, c.ToJSONSchema(nil))
}

func TestToJSONSchemaNonStruct(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	assert.Equal(t, emptyObjectSchema(), c.ToJSONSchema(ShapeOf[[]string]()))
}

func TestToJSONSchemaTags(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	schema := c.ToJSONSchema(ShapeOf[widgetListRequest]())

	assert.Equal(t, "widgetListRequest", schema["title"])
	_, hasRequired := schema["required"]
	assert.False(t, hasRequired)

	props := schema["properties"].(map[string]any)
	typ := props["type"].(map[string]any)
	assert.Equal(t, "string", typ["type"])
	assert.Equal(t, []any{"all", "asset", "cash"}, typ["enum"])
	assert.Equal(t, "all", typ["default"])
	assert.Equal(t, "Filter by type", typ["description"])

	limit := props["limit"].(map[string]any)
	assert.Equal(t, "integer", limit["type"])
}

func TestToJSONSchemaNested(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	schema := c.ToJSONSchema(ShapeOf[*nestedRequest]())

	assert.Equal(t, []string{"id", "store"}, schema["required"])
	props := schema["properties"].(map[string]any)

	store := props["store"].(map[string]any)
	assert.Equal(t, "object", store["type"])
	assert.Equal(t, []string{"transactions"}, store["required"])

	txs := store["properties"].(map[string]any)["transactions"].(map[string]any)
	assert.Equal(t, "array", txs["type"])
	assert.Equal(t, "Splits", txs["description"])
	item := txs["items"].(map[string]any)
	assert.Equal(t, []string{"amount", "description"}, item["required"])
	amount := item["properties"].(map[string]any)["amount"].(map[string]any)
	assert.Equal(t, "Amount, as a string", amount["description"])

	extra := store["properties"].(map[string]any)["extra"].(map[string]any)
	assert.Equal(t, true, extra["additionalProperties"])

	assert.Equal(t, "number", props["rate"].(map[string]any)["type"])
	assert.Equal(t, map[string]any{}, props["any"])
}

func TestToJSONSchemaCircular(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	schema := c.ToJSONSchema(ShapeOf[loop]())

	next := schema["properties"].(map[string]any)["next"].(map[string]any)
	assert.Equal(t, "object", next["type"])
	assert.Contains(t, next["description"], "Circular reference")
}

func TestToJSONSchemaIsValidJSON(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	_, err := json.Marshal(c.ToJSONSchema(ShapeOf[nestedRequest]()))
	assert.NoError(t, err)
}

func TestParseSchemaTag(t *testing.T) {
	ft := parseSchemaTag("required,enum=a|b,default=a,format=date,description=Some text, with commas")
	assert.True(t, ft.required)
	assert.Equal(t, []string{"a", "b"}, ft.enum)
	assert.Equal(t, "a", ft.defaultRaw)
	assert.True(t, ft.hasDefault)
	assert.Equal(t, "date", ft.format)
	assert.Equal(t, "Some text, with commas", ft.description)

	assert.Equal(t, fieldTag{}, parseSchemaTag(""))
}

func TestValidateRequestNilShape(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	got, err := c.ValidateRequest(map[string]any{"x": 1}, nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestValidateRequestInputs(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	shape := ShapeOf[widgetGetRequest]()

	inputs := []any{
		map[string]any{"id": "5"},
		map[string]string{"id": "5"},
		`{"id": "5"}`,
		[]byte(`{"id": "5"}`),
		json.RawMessage(`{"id": "5", "unknown": true}`),
		widgetGetRequest{ID: "5"},
		&widgetGetRequest{ID: "5"},
	}
	for _, in := range inputs {
		got, err := c.ValidateRequest(in, shape)
		require.NoError(t, err, "%T", in)
		assert.Equal(t, &widgetGetRequest{ID: "5"}, got, "%T", in)
	}
}

func TestValidateRequestInvalidJSON(t *testing.T) {
	c := NewSchemaConverter(quietLogger())

	_, err := c.ValidateRequest(`{"id": `, ShapeOf[widgetGetRequest]())
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "invalid JSON")

	_, err = c.ValidateRequest(`[1, 2]`, ShapeOf[widgetGetRequest]())
	require.ErrorAs(t, err, &invalid)

	_, err = c.ValidateRequest(42, ShapeOf[widgetGetRequest]())
	require.ErrorAs(t, err, &invalid)
}

func TestValidateRequestBlankString(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	got, err := c.ValidateRequest("  ", ShapeOf[widgetListRequest]())
	require.NoError(t, err)
	assert.Equal(t, "all", got.(*widgetListRequest).Type)
}

func TestValidateRequestCoercion(t *testing.T) {
	c := NewSchemaConverter(quietLogger())

	got, err := c.ValidateRequest(map[string]any{
		"limit": "25",
		"page":  float64(2),
		"type":  "asset",
	}, ShapeOf[widgetListRequest]())
	require.NoError(t, err)

	req := got.(*widgetListRequest)
	require.NotNil(t, req.Limit)
	require.NotNil(t, req.Page)
	assert.Equal(t, 25, *req.Limit)
	assert.Equal(t, 2, *req.Page)
	assert.Equal(t, "asset", req.Type)
}

func TestValidateRequestCollectsAllIssues(t *testing.T) {
	c := NewSchemaConverter(quietLogger())

	_, err := c.ValidateRequest(map[string]any{
		"limit": 2.5,
		"type":  "bogus",
		"page":  true,
	}, ShapeOf[widgetListRequest]())

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	issues := invalid.Issues()
	require.Len(t, issues, 3)
	assert.Equal(t, "type", issues[0].Path)
	assert.Equal(t, "limit", issues[1].Path)
	assert.Equal(t, "page", issues[2].Path)
}

func TestValidateRequestNested(t *testing.T) {
	c := NewSchemaConverter(quietLogger())

	raw := `{
		"id": "7",
		"rate": 1.5,
		"any": {"free": "form"},
		"store": {
			"group_title": "Groceries",
			"transactions": [
				{"amount": "12.50", "description": "Milk", "tags": ["food"], "budget_id": 3, "reconciled": "true"}
			]
		}
	}`
	got, err := c.ValidateRequest(raw, ShapeOf[nestedRequest]())
	require.NoError(t, err)

	req := got.(*nestedRequest)
	assert.Equal(t, "7", req.ID)
	require.NotNil(t, req.Rate)
	assert.Equal(t, 1.5, *req.Rate)
	assert.Equal(t, "Groceries", req.Store.GroupTitle)
	require.Len(t, req.Store.Transactions, 1)

	split := req.Store.Transactions[0]
	assert.Equal(t, "12.50", split.Amount)
	assert.Equal(t, []string{"food"}, split.Tags)
	require.NotNil(t, split.BudgetID)
	assert.Equal(t, 3, *split.BudgetID)
	require.NotNil(t, split.Reconciled)
	assert.True(t, *split.Reconciled)
	assert.Equal(t, map[string]any{"free": "form"}, req.Any)
}

func TestValidateRequestNestedIssuePaths(t *testing.T) {
	c := NewSchemaConverter(quietLogger())

	_, err := c.ValidateRequest(map[string]any{
		"id": "7",
		"store": map[string]any{
			"transactions": []any{
				map[string]any{"amount": "1"},
				"not an object",
			},
		},
	}, ShapeOf[nestedRequest]())

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	paths := []string{}
	for _, i := range invalid.Issues() {
		paths = append(paths, i.Path)
	}
	assert.Equal(t, []string{"store.transactions[0].description", "store.transactions[1]"}, paths)
}

func TestSchemaRoundTrip(t *testing.T) {
	c := NewSchemaConverter(quietLogger())
	shape := ShapeOf[nestedRequest]()
	schema := c.ToJSONSchema(shape)

	params := map[string]any{}
	for _, name := range schema["required"].([]string) {
		switch name {
		case "id":
			params[name] = "1"
		case "store":
			params[name] = map[string]any{"transactions": []any{}}
		}
	}
	_, err := c.ValidateRequest(params, shape)
	assert.NoError(t, err)
}
