// Package firefly is a small client for the Firefly III REST API.
package firefly

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/firefly-mcp/firefly-mcp/internal/requestid"
)

const (
	// DefaultBaseURL is used when no API URL is configured.
	DefaultBaseURL = "https://firefly.dev.nlocal/api/v1"
	// DefaultTimeout bounds every request made by the client.
	DefaultTimeout = 30 * time.Second
)

// Config configures a Client.
type Config struct {
	BaseURL            string
	Token              string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Client talks to one Firefly III instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client for cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed dev instances
	}

	c := &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root requests are made against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if strings.TrimSpace(c.token) != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if id := requestid.From(ctx); id != "" {
		req.Header.Set("X-Trace-Id", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"duration":   time.Since(start).String(),
		"request_id": requestid.From(ctx),
	}).Debug("firefly request")

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}

func (c *Client) list(ctx context.Context, path string, req any, skip ...string) (*Array, error) {
	query, err := queryValues(req, skip...)
	if err != nil {
		return nil, err
	}
	var out Array
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []Resource{}
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, req any, skip ...string) (*Single, error) {
	query, err := queryValues(req, skip...)
	if err != nil {
		return nil, err
	}
	var out Single
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*Single, error) {
	var out Single
	if err := c.do(ctx, method, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) remove(ctx context.Context, path, message string) (*Message, error) {
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return nil, err
	}
	return &Message{Message: message}, nil
}

func (c *Client) trigger(ctx context.Context, path string, req any, message string, skip ...string) (*Message, error) {
	query, err := queryValues(req, skip...)
	if err != nil {
		return nil, err
	}
	if err := c.do(ctx, http.MethodPost, path, query, nil, nil); err != nil {
		return nil, err
	}
	return &Message{Message: message}, nil
}

// queryValues flattens req into query parameters. Empty fields are left
// out, list values are sent as repeated key[] entries, and keys in skip
// (path parameters) are dropped.
func queryValues(req any, skip ...string) (url.Values, error) {
	values := url.Values{}
	if req == nil {
		return values, nil
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encoding query parameters")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, errors.Wrap(err, "encoding query parameters")
	}

	for _, k := range skip {
		delete(fields, k)
	}
	for k, v := range fields {
		switch val := v.(type) {
		case nil:
		case []any:
			for _, item := range val {
				values.Add(k+"[]", queryScalar(item))
			}
		default:
			values.Set(k, queryScalar(val))
		}
	}
	return values, nil
}

func queryScalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func escape(id string) string {
	return url.PathEscape(id)
}
