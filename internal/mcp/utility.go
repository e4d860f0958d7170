package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// VersionInput is the argument object of get_version.
type VersionInput struct {
	RandomString string `json:"random_string,omitempty" jsonschema:"Ignored; some clients cannot call tools without arguments"`
}

// VersionOutput is the result of get_version.
type VersionOutput struct {
	Version string `json:"version"`
}

// EchoInput is the argument object of echo.
type EchoInput struct {
	Message string `json:"message" jsonschema:"Text to send back"`
}

// EchoOutput is the result of echo.
type EchoOutput struct {
	Message string `json:"message"`
}

// utilityTool records a typed utility tool in the ToolRegistry.
type utilityTool struct {
	def ToolDefinition
	run func(ctx context.Context, args json.RawMessage) (any, error)
}

func (t *utilityTool) Definition() ToolDefinition {
	return t.def
}

func (t *utilityTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	return t.run(ctx, args)
}

func (s *Server) registerUtilityTools() {
	version := s.opts.Version

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_version",
		Description: "Get the version of the Firefly MCP server",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in VersionInput) (*mcp.CallToolResult, VersionOutput, error) {
		return nil, VersionOutput{Version: version}, nil
	})
	s.recordUtility("get_version", "Get the version of the Firefly MCP server", func(context.Context, json.RawMessage) (any, error) {
		return VersionOutput{Version: version}, nil
	})

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "echo",
		Description: "Echo a message back",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in EchoInput) (*mcp.CallToolResult, EchoOutput, error) {
		return nil, EchoOutput{Message: in.Message}, nil
	})
	s.recordUtility("echo", "Echo a message back", func(_ context.Context, args json.RawMessage) (any, error) {
		var in EchoInput
		if len(args) > 0 {
			if err := json.Unmarshal(args, &in); err != nil {
				return nil, err
			}
		}
		return EchoOutput{Message: in.Message}, nil
	})
}

func (s *Server) recordUtility(name, description string, run func(context.Context, json.RawMessage) (any, error)) {
	t := &utilityTool{
		def: ToolDefinition{Name: name, Description: description, Tags: []string{"utility"}},
		run: run,
	}
	if err := s.tools.registerTool(t); err != nil {
		s.log.WithError(err).Error("failed to record utility tool")
	}
}
