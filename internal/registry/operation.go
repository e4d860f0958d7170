package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
)

// Shape describes the Go type of an operation request or response.
type Shape struct {
	typ reflect.Type
}

// ShapeOf returns the Shape for T. Pointer types are reduced to their
// element type.
func ShapeOf[T any]() *Shape {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &Shape{typ: t}
}

// Name returns the Go type name, or "object" for anonymous types.
func (s *Shape) Name() string {
	if s == nil || s.typ == nil {
		return "object"
	}
	if s.typ.Name() == "" {
		return "object"
	}
	return s.typ.Name()
}

// Type returns the underlying reflect.Type.
func (s *Shape) Type() reflect.Type {
	if s == nil {
		return nil
	}
	return s.typ
}

// CallFunc executes one operation against the backend. req is a pointer to
// a value of the operation's request Shape, or nil when it has none.
type CallFunc func(ctx context.Context, req any) (any, error)

// Bind adapts a typed backend function into a CallFunc.
func Bind[Req, Resp any](fn func(context.Context, *Req) (Resp, error)) CallFunc {
	return func(ctx context.Context, req any) (any, error) {
		switch r := req.(type) {
		case *Req:
			return fn(ctx, r)
		case Req:
			return fn(ctx, &r)
		case nil:
			return fn(ctx, new(Req))
		default:
			return nil, fmt.Errorf("unexpected request type %T, want *%s", req, reflect.TypeFor[Req]())
		}
	}
}

// OperationSpec is the table entry a provider is built from.
type OperationSpec struct {
	Name        string
	Description string
	Request     *Shape
	Response    *Shape
	Call        CallFunc
	Tags        []string
}

// Operation describes one callable action of an entity. Values are
// immutable once the provider has been built.
type Operation struct {
	name        string
	description string
	request     *Shape
	response    *Shape
	call        CallFunc
	tags        []string
}

func newOperation(spec OperationSpec) Operation {
	tags := make([]string, 0, len(spec.Tags))
	seen := make(map[string]bool, len(spec.Tags))
	for _, t := range spec.Tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return Operation{
		name:        spec.Name,
		description: spec.Description,
		request:     spec.Request,
		response:    spec.Response,
		call:        spec.Call,
		tags:        tags,
	}
}

func (o Operation) Name() string        { return o.name }
func (o Operation) Description() string { return o.description }
func (o Operation) Request() *Shape     { return o.request }
func (o Operation) Response() *Shape    { return o.response }

// Tags returns the operation's tag set, sorted.
func (o Operation) Tags() []string {
	out := make([]string, len(o.tags))
	copy(out, o.tags)
	return out
}

// HasTag reports whether the operation carries tag.
func (o Operation) HasTag(tag string) bool {
	for _, t := range o.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Call invokes the backend function.
func (o Operation) Call(ctx context.Context, req any) (any, error) {
	return o.call(ctx, req)
}
