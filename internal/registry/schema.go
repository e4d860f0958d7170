package registry

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// SchemaConverter turns request Shapes into JSON Schema documents and
// validates raw tool arguments against them.
//
// Struct tags drive both directions:
//
//	type AccountListRequest struct {
//	    Type  string `json:"type,omitempty" jsonschema:"enum=all|asset|cash,default=all,description=Account type filter"`
//	    Limit *int   `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
//	}
//
// description= must come last in the jsonschema tag; it runs to the end of
// the tag and may contain commas.
type SchemaConverter struct {
	log logrus.FieldLogger
}

// NewSchemaConverter creates a converter that logs through log.
func NewSchemaConverter(log logrus.FieldLogger) *SchemaConverter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SchemaConverter{log: log}
}

func emptyObjectSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// ToJSONSchema returns the JSON Schema of shape. A nil shape, or one whose
// schema cannot be produced, yields an empty object schema.
func (c *SchemaConverter) ToJSONSchema(shape *Shape) (schema map[string]any) {
	if shape == nil || shape.typ == nil {
		return emptyObjectSchema()
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.WithField("shape", shape.Name()).Warnf("schema generation failed: %v", r)
			schema = emptyObjectSchema()
		}
	}()

	if shape.typ.Kind() != reflect.Struct {
		c.log.WithField("shape", shape.Name()).Warn("request shape is not a struct, using empty schema")
		return emptyObjectSchema()
	}

	schema = structSchema(shape.typ, nil)
	schema["title"] = shape.Name()
	return schema
}

// fieldTag is the parsed form of a jsonschema struct tag.
type fieldTag struct {
	required    bool
	description string
	enum        []string
	format      string
	defaultRaw  string
	hasDefault  bool
}

func parseSchemaTag(tag string) fieldTag {
	var ft fieldTag
	for {
		tag = strings.TrimLeft(tag, " ,")
		if tag == "" {
			break
		}
		if rest, ok := strings.CutPrefix(tag, "description="); ok {
			ft.description = strings.TrimSpace(rest)
			break
		}

		var part string
		part, tag, _ = strings.Cut(tag, ",")
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			ft.required = true
		case "enum":
			ft.enum = strings.Split(value, "|")
		case "format":
			ft.format = value
		case "default":
			ft.defaultRaw = value
			ft.hasDefault = true
		}
	}
	return ft
}

// structField is an exported, JSON-visible field of a request struct.
type structField struct {
	name     string
	typ      reflect.Type
	tag      fieldTag
	required bool
}

func structFields(t reflect.Type) []structField {
	fields := make([]structField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := getJSONFieldName(f)
		if name == "" || name == "-" {
			continue
		}
		tag := parseSchemaTag(f.Tag.Get("jsonschema"))
		fields = append(fields, structField{
			name:     name,
			typ:      f.Type,
			tag:      tag,
			required: isRequiredField(f, tag),
		})
	}
	return fields
}

// getJSONFieldName extracts the JSON field name from struct tags.
func getJSONFieldName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return ""
	}
	name, _, _ := strings.Cut(jsonTag, ",")
	if name == "" {
		return strings.ToLower(field.Name)
	}
	return name
}

// isRequiredField: omitempty always wins, otherwise the field must be marked
// required in the jsonschema tag.
func isRequiredField(field reflect.StructField, tag fieldTag) bool {
	_, opts, _ := strings.Cut(field.Tag.Get("json"), ",")
	if strings.Contains(opts, "omitempty") {
		return false
	}
	return tag.required
}

func (f structField) defaultValue() (any, error) {
	base := derefType(f.typ)
	raw := f.tag.defaultRaw
	switch base.Kind() {
	case reflect.String:
		return raw, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseInt(raw, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(raw, 64)
	case reflect.Bool:
		return strconv.ParseBool(raw)
	}
	return nil, fmt.Errorf("no default supported for %s", base)
}

func structSchema(t reflect.Type, stack []reflect.Type) map[string]any {
	for _, seen := range stack {
		if seen == t {
			return map[string]any{
				"type":        "object",
				"description": fmt.Sprintf("Circular reference to %s", t.Name()),
			}
		}
	}
	stack = append(stack, t)

	properties := make(map[string]any)
	required := []string{}

	for _, f := range structFields(t) {
		prop := typeSchema(f.typ, stack)
		if f.tag.description != "" {
			prop["description"] = f.tag.description
		}
		if len(f.tag.enum) > 0 {
			enum := make([]any, len(f.tag.enum))
			for i, v := range f.tag.enum {
				enum[i] = v
			}
			if prop["type"] == "array" {
				if items, ok := prop["items"].(map[string]any); ok {
					items["enum"] = enum
				}
			} else {
				prop["enum"] = enum
			}
		}
		if f.tag.format != "" {
			prop["format"] = f.tag.format
		}
		if f.tag.hasDefault {
			if v, err := f.defaultValue(); err == nil {
				prop["default"] = v
			}
		}
		properties[f.name] = prop
		if f.required {
			required = append(required, f.name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func typeSchema(t reflect.Type, stack []reflect.Type) map[string]any {
	t = derefType(t)
	switch t.Kind() {
	case reflect.Struct:
		return structSchema(t, stack)
	case reflect.Slice, reflect.Array:
		return map[string]any{
			"type":  "array",
			"items": typeSchema(t.Elem(), stack),
		}
	case reflect.Map:
		schema := map[string]any{"type": "object"}
		if derefType(t.Elem()).Kind() == reflect.Interface {
			schema["additionalProperties"] = true
		} else {
			schema["additionalProperties"] = typeSchema(t.Elem(), stack)
		}
		return schema
	case reflect.Interface:
		return map[string]any{}
	}
	return map[string]any{"type": jsonTypeFromGo(t)}
}

// jsonTypeFromGo maps Go kinds to JSON Schema types.
func jsonTypeFromGo(t reflect.Type) string {
	if t == nil {
		return "null"
	}
	switch derefType(t).Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Interface:
		return ""
	default:
		return "string"
	}
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
