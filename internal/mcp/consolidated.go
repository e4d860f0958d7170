package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

// Names of the consolidated tools.
const (
	ExecuteToolName        = "firefly_execute"
	ListOperationsToolName = "firefly_list_operations"
	GetSchemaToolName      = "firefly_get_schema"
)

// ExecuteInput is the argument object of firefly_execute.
type ExecuteInput struct {
	Entity    string `json:"entity" jsonschema:"required,description=Entity type: account, transaction, budget, category, tag, rule, rule_group, bill or piggy_bank"`
	Operation string `json:"operation" jsonschema:"required,description=Operation name, see firefly_list_operations"`
	Params    any    `json:"params,omitempty" jsonschema:"description=Operation parameters as an object or a JSON string"`
}

// ListOperationsInput is the argument object of firefly_list_operations.
type ListOperationsInput struct {
	Entity string `json:"entity,omitempty" jsonschema:"description=Only list operations of this entity type"`
}

// GetSchemaInput is the argument object of firefly_get_schema.
type GetSchemaInput struct {
	Entity    string `json:"entity" jsonschema:"required,description=Entity type"`
	Operation string `json:"operation" jsonschema:"required,description=Operation name"`
}

// consolidatedTool is one of the three generic tools. Every failure,
// including argument errors, is returned as an {"error": message} payload
// instead of an error.
type consolidatedTool struct {
	def  ToolDefinition
	run  func(ctx context.Context, args json.RawMessage) (any, error)
	fail func(msg string) any
	log  logrus.FieldLogger
}

func (t *consolidatedTool) Definition() ToolDefinition {
	return t.def
}

func (t *consolidatedTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	out, err := t.run(ctx, args)
	if err != nil {
		t.log.WithError(err).WithField("tool", t.def.Name).Warn("returning error payload")
		return t.fail(err.Error()), nil
	}
	return out, nil
}

func errorPayload(msg string) any {
	return map[string]any{"error": msg}
}

func errorListPayload(msg string) any {
	return []map[string]any{{"error": msg}}
}

func (s *Server) consolidatedTools() []Tool {
	conv := s.registry.Converter()
	entities := strings.Join(s.registry.Config().EntityNames(), ", ")

	return []Tool{
		&consolidatedTool{
			def: ToolDefinition{
				Name: ExecuteToolName,
				Description: "Execute an operation on a Firefly III entity. Enabled entities: " + entities +
					". Use firefly_list_operations to discover operations and firefly_get_schema for their parameters.",
				Schema: conv.ToJSONSchema(registry.ShapeOf[ExecuteInput]()),
				Tags:   []string{"execute"},
			},
			run:  s.runExecute,
			fail: errorPayload,
			log:  s.log,
		},
		&consolidatedTool{
			def: ToolDefinition{
				Name:        ListOperationsToolName,
				Description: "List available operations, optionally for one entity type.",
				Schema:      conv.ToJSONSchema(registry.ShapeOf[ListOperationsInput]()),
				Tags:        []string{"read", "discovery"},
			},
			run:  s.runListOperations,
			fail: errorListPayload,
			log:  s.log,
		},
		&consolidatedTool{
			def: ToolDefinition{
				Name:        GetSchemaToolName,
				Description: "Get the parameter schema of an operation.",
				Schema:      conv.ToJSONSchema(registry.ShapeOf[GetSchemaInput]()),
				Tags:        []string{"read", "discovery"},
			},
			run:  s.runGetSchema,
			fail: errorPayload,
			log:  s.log,
		},
	}
}

func (s *Server) runExecute(ctx context.Context, args json.RawMessage) (any, error) {
	in, err := s.registry.Converter().ValidateRequest(args, registry.ShapeOf[ExecuteInput]())
	if err != nil {
		return nil, err
	}
	req := in.(*ExecuteInput)
	return s.registry.ExecuteOperation(ctx, req.Entity, req.Operation, req.Params)
}

func (s *Server) runListOperations(_ context.Context, args json.RawMessage) (any, error) {
	in, err := s.registry.Converter().ValidateRequest(args, registry.ShapeOf[ListOperationsInput]())
	if err != nil {
		return nil, err
	}
	req := in.(*ListOperationsInput)

	var filter registry.EntityType
	if req.Entity != "" {
		filter, err = registry.ParseEntityType(req.Entity)
		if err != nil {
			return nil, err
		}
	}
	return s.registry.ListOperations(filter)
}

func (s *Server) runGetSchema(_ context.Context, args json.RawMessage) (any, error) {
	in, err := s.registry.Converter().ValidateRequest(args, registry.ShapeOf[GetSchemaInput]())
	if err != nil {
		return nil, err
	}
	req := in.(*GetSchemaInput)
	return s.registry.OperationSchema(req.Entity, req.Operation)
}
