package firefly

import (
	"context"
	"encoding/json"
	"net/http"
)

// Resource is one JSON:API resource object as returned by Firefly III.
type Resource struct {
	Type          string         `json:"type"`
	ID            string         `json:"id"`
	Attributes    map[string]any `json:"attributes"`
	Links         map[string]any `json:"links,omitempty"`
	Relationships map[string]any `json:"relationships,omitempty"`
}

// Single is a document holding one resource.
type Single struct {
	Data Resource `json:"data"`
}

// Array is a paginated document holding a list of resources.
type Array struct {
	Data  []Resource     `json:"data"`
	Meta  map[string]any `json:"meta,omitempty"`
	Links map[string]any `json:"links,omitempty"`
}

// Message is the result of operations that return no document, such as
// deletes and rule triggers.
type Message struct {
	Message string `json:"message"`
}

// ToMap implements registry.Serializable.
func (s *Single) ToMap() map[string]any {
	return toMap(s)
}

// ToMap implements registry.Serializable.
func (a *Array) ToMap() map[string]any {
	if a.Data == nil {
		a.Data = []Resource{}
	}
	return toMap(a)
}

// ToMap implements registry.Serializable.
func (m *Message) ToMap() map[string]any {
	return map[string]any{"message": m.Message}
}

// Pagination returns the meta.pagination block of a list response.
func (a *Array) Pagination() map[string]any {
	p, _ := a.Meta["pagination"].(map[string]any)
	return p
}

func toMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// About is the payload of GET /about.
type About struct {
	Data struct {
		Version    string `json:"version"`
		APIVersion string `json:"api_version"`
		PHPVersion string `json:"php_version"`
		OS         string `json:"os"`
		Driver     string `json:"driver"`
	} `json:"data"`
}

// About returns the server's version information. It is used to check
// connectivity and credentials.
func (c *Client) About(ctx context.Context) (*About, error) {
	var out About
	if err := c.do(ctx, http.MethodGet, "/about", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
