package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ValidateRequest checks data against shape and returns a pointer to a
// populated value of the shape's type. A nil shape means the operation
// takes no input and always yields nil.
//
// data may be nil (no parameters), a map, a JSON document as string or
// bytes, or a value already of the shape's type. Unknown keys are dropped,
// defaults from struct tags are applied, and lax coercions are made:
// integral numbers and numeric strings for integer fields, and the usual
// boolean spellings for bool fields. Every problem found is reported in a
// single ValidationError.
func (c *SchemaConverter) ValidateRequest(data any, shape *Shape) (any, error) {
	if shape == nil || shape.typ == nil {
		return nil, nil
	}
	t := shape.typ

	if data != nil {
		dt := reflect.TypeOf(data)
		if dt == t {
			ptr := reflect.New(t)
			ptr.Elem().Set(reflect.ValueOf(data))
			return ptr.Interface(), nil
		}
		if dt == reflect.PointerTo(t) && !reflect.ValueOf(data).IsNil() {
			return data, nil
		}
	}

	if t.Kind() != reflect.Struct {
		return nil, &ValidationError{
			Shape: shape.Name(),
			Err:   issue("", "request shape is not an object"),
		}
	}

	raw, err := toObject(data)
	if err != nil {
		return nil, &ValidationError{Shape: shape.Name(), Err: err}
	}

	normalized, err := validateStruct(t, raw, "")
	if err != nil {
		return nil, &ValidationError{Shape: shape.Name(), Err: err}
	}

	out := reflect.New(t)
	if err := decode(normalized, out.Interface()); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", shape.Name())
	}
	return out.Interface(), nil
}

func decode(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

func toObject(data any) (map[string]any, error) {
	switch v := data.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case string:
		return parseJSONObject([]byte(v))
	case json.RawMessage:
		return parseJSONObject(v)
	case []byte:
		return parseJSONObject(v)
	}
	if m, ok := asMap(data); ok {
		return m, nil
	}
	return nil, issue("", "expected an object, got %s", describe(data))
}

// parseJSONObject treats blank input and a JSON null as "no parameters".
func parseJSONObject(b []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, issue("", "invalid JSON: %v", err)
	}
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, issue("", "expected a JSON object, got %s", describe(v))
	}
	return m, nil
}

func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func validateStruct(t reflect.Type, in map[string]any, prefix string) (map[string]any, error) {
	out := make(map[string]any, len(in))
	var errs error

	for _, f := range structFields(t) {
		path := joinPath(prefix, f.name)
		v, present := in[f.name]
		if !present || v == nil {
			switch {
			case f.required:
				errs = multierr.Append(errs, issue(path, "field required"))
			case f.tag.hasDefault:
				if dv, err := f.defaultValue(); err == nil {
					out[f.name] = dv
				}
			}
			continue
		}

		cv, err := coerce(f.typ, v, path, f.tag.enum)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out[f.name] = cv
	}
	return out, errs
}

func coerce(t reflect.Type, v any, path string, enum []string) (any, error) {
	t = derefType(t)
	switch t.Kind() {
	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return nil, issue(path, "expected string, got %s", describe(v))
		}
		if len(enum) > 0 && !contains(enum, s) {
			return nil, issue(path, "must be one of [%s], got %q", strings.Join(enum, ", "), s)
		}
		return s, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := toInt(v)
		if !ok {
			return nil, issue(path, "expected integer, got %s", describe(v))
		}
		return n, nil

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(v)
		if !ok {
			return nil, issue(path, "expected number, got %s", describe(v))
		}
		return f, nil

	case reflect.Bool:
		b, ok := toBool(v)
		if !ok {
			return nil, issue(path, "expected boolean, got %s", describe(v))
		}
		return b, nil

	case reflect.Slice, reflect.Array:
		rv := reflect.ValueOf(v)
		if _, isString := v.(string); isString || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return nil, issue(path, "expected array, got %s", describe(v))
		}
		items := make([]any, 0, rv.Len())
		var errs error
		for i := 0; i < rv.Len(); i++ {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			item := rv.Index(i).Interface()
			if item == nil {
				errs = multierr.Append(errs, issue(itemPath, "null is not allowed"))
				continue
			}
			cv, err := coerce(t.Elem(), item, itemPath, enum)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			items = append(items, cv)
		}
		return items, errs

	case reflect.Struct:
		m, ok := asMap(v)
		if !ok {
			return nil, issue(path, "expected object, got %s", describe(v))
		}
		return validateStruct(t, m, path)

	case reflect.Map:
		m, ok := asMap(v)
		if !ok {
			return nil, issue(path, "expected object, got %s", describe(v))
		}
		if derefType(t.Elem()).Kind() == reflect.Interface {
			return m, nil
		}
		out := make(map[string]any, len(m))
		var errs error
		for k, item := range m {
			cv, err := coerce(t.Elem(), item, joinPath(path, k), nil)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out[k] = cv
		}
		return out, errs

	case reflect.Interface:
		return v, nil
	}
	return nil, issue(path, "unsupported field type %s", t)
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	case bool:
		return 0, false
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case bool:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "t", "yes", "y", "on", "1":
			return true, true
		case "false", "f", "no", "n", "off", "0":
			return false, true
		}
		return false, false
	}
	if n, ok := toInt(v); ok && (n == 0 || n == 1) {
		return n == 1, true
	}
	return false, false
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
