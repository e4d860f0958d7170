// Package mcp exposes the operation registry to MCP clients, either as
// three consolidated tools or as one tool per operation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/firefly-mcp/firefly-mcp/internal/registry"
	"github.com/firefly-mcp/firefly-mcp/internal/requestid"
)

// DefaultName is the implementation name announced to clients.
const DefaultName = "Firefly MCP Server"

// Options configures a Server.
type Options struct {
	Name    string
	Version string
	// UtilityTools adds get_version and echo next to the registry tools.
	UtilityTools bool
	Logger       logrus.FieldLogger
}

// Server represents an MCP server that exposes the Firefly III operations
type Server struct {
	server   *mcp.Server
	registry *registry.Registry
	tools    *ToolRegistry
	opts     Options
	log      logrus.FieldLogger
}

// NewServer creates a new MCP server over reg
func NewServer(reg *registry.Registry, opts Options) *Server {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    opts.Name,
		Version: opts.Version,
	}, &mcp.ServerOptions{
		Instructions: instructions(reg.Config()),
	})

	return &Server{
		server:   server,
		registry: reg,
		tools:    NewToolRegistry(),
		opts:     opts,
		log:      opts.Logger,
	}
}

func instructions(cfg registry.Config) string {
	if cfg.DirectMode {
		return "Firefly III personal finance tools. Each tool is named <entity>_<operation> and takes the operation's parameters directly."
	}
	return "Firefly III personal finance tools. Call firefly_list_operations to discover operations, " +
		"firefly_get_schema for their parameters, then firefly_execute with entity, operation and params."
}

// RegisterTools seals the registry and adds the tools of the configured
// dispatch mode. A tool that fails to register is logged and skipped.
func (s *Server) RegisterTools(ctx context.Context) error {
	s.registry.Seal()

	mode := "consolidated"
	var tools []Tool
	if s.registry.Config().DirectMode {
		mode = "direct"
		tools = s.directTools()
	} else {
		tools = s.consolidatedTools()
	}

	failed := 0
	for _, t := range tools {
		if err := s.addTool(t); err != nil {
			failed++
			s.log.WithError(err).Error("failed to register tool")
		}
	}

	if s.opts.UtilityTools {
		s.registerUtilityTools()
	}

	stats := s.registry.Stats()
	s.log.WithFields(logrus.Fields{
		"mode":       mode,
		"tools":      s.tools.Len(),
		"failed":     failed,
		"providers":  stats.Providers,
		"operations": stats.Operations,
		"entities":   stats.Entities,
	}).Info("registered MCP tools")
	return nil
}

// addTool advertises t on the MCP server. The SDK panics on schemas it
// cannot accept, so panics are turned into errors here.
func (s *Server) addTool(t Tool) (err error) {
	var def ToolDefinition
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registering tool %q: %v", def.Name, r)
		}
	}()

	def = t.Definition()
	if _, exists := s.tools.GetTool(def.Name); exists {
		return fmt.Errorf("tool %q already registered", def.Name)
	}

	s.server.AddTool(&mcp.Tool{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: def.Schema,
		Annotations: annotations(def.Tags),
	}, s.handler(t))
	return s.tools.registerTool(t)
}

func annotations(tags []string) *mcp.ToolAnnotations {
	a := &mcp.ToolAnnotations{}
	for _, tag := range tags {
		switch tag {
		case "read":
			a.ReadOnlyHint = true
		case "delete":
			destructive := true
			a.DestructiveHint = &destructive
		}
	}
	return a
}

// handler adapts a Tool to the SDK's raw tool handler. Errors become
// IsError results carrying the message.
func (s *Server) handler(t Tool) mcp.ToolHandler {
	name := t.Definition().Name
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, reqID := requestid.Ensure(ctx)
		log := s.log.WithFields(logrus.Fields{
			"tool":       name,
			"request_id": reqID,
		})

		var args json.RawMessage
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}

		start := time.Now()
		out, err := t.Execute(ctx, args)
		log = log.WithField("elapsed", time.Since(start))
		if err != nil {
			if registry.IsDispatchError(err) {
				log.WithError(err).Warn("tool call rejected")
			} else {
				log.WithError(err).Error("tool call failed")
			}
			return errorResult(err.Error()), nil
		}
		log.Debug("tool call completed")

		text, err := renderText(out)
		if err != nil {
			log.WithError(err).Error("failed to encode tool result")
			return errorResult(err.Error()), nil
		}
		return textResult(text), nil
	}
}

func renderText(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// Run serves the MCP protocol over stdin/stdout until ctx is done
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}

// Tools returns the tools that were registered.
func (s *Server) Tools() *ToolRegistry {
	return s.tools
}
