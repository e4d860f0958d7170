package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

// directTool exposes a single registry operation as "<entity>_<operation>".
// Errors are returned to the caller unchanged.
type directTool struct {
	entity    registry.EntityType
	operation string
	registry  *registry.Registry
	def       ToolDefinition
}

func newDirectTool(reg *registry.Registry, entity registry.EntityType, op registry.Operation) *directTool {
	return &directTool{
		entity:    entity,
		operation: op.Name(),
		registry:  reg,
		def: ToolDefinition{
			Name:        DirectToolName(entity, op.Name()),
			Description: op.Description(),
			Schema:      reg.Converter().ToJSONSchema(op.Request()),
			Tags:        op.Tags(),
		},
	}
}

// DirectToolName is the tool name used for an operation in direct mode.
func DirectToolName(entity registry.EntityType, operation string) string {
	return fmt.Sprintf("%s_%s", entity, operation)
}

func (t *directTool) Definition() ToolDefinition {
	return t.def
}

func (t *directTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params any
	if trimmed := bytes.TrimSpace(args); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		params = json.RawMessage(trimmed)
	}
	return t.registry.ExecuteOperation(ctx, string(t.entity), t.operation, params)
}

// directTools builds one tool per registered operation. Building a tool
// for an exotic request shape may panic; such operations are logged and
// left out.
func (s *Server) directTools() []Tool {
	var tools []Tool
	for _, p := range s.registry.Providers() {
		for _, op := range p.Operations() {
			t, err := s.buildDirectTool(p.Entity(), op)
			if err != nil {
				s.log.WithError(err).WithField("entity", p.Entity()).Error("skipping operation")
				continue
			}
			tools = append(tools, t)
		}
	}
	return tools
}

func (s *Server) buildDirectTool(entity registry.EntityType, op registry.Operation) (t Tool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("building tool for %s.%s: %v", entity, op.Name(), r)
		}
	}()
	return newDirectTool(s.registry, entity, op), nil
}
