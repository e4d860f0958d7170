package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListRules(ctx context.Context, req *PageRequest) (*Array, error) {
	return c.list(ctx, "/rules", req)
}

func (c *Client) GetRule(ctx context.Context, req *IDRequest) (*Single, error) {
	return c.get(ctx, "/rules/"+escape(req.ID), nil)
}

func (c *Client) CreateRule(ctx context.Context, req *RuleStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/rules", req)
}

func (c *Client) UpdateRule(ctx context.Context, req *RuleUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/rules/"+escape(req.ID), req.RuleUpdate)
}

func (c *Client) DeleteRule(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/rules/"+escape(req.ID), "Rule deleted successfully")
}

// TestRule lists the transactions the rule would match. Nothing is changed.
func (c *Client) TestRule(ctx context.Context, req *RuleRunRequest) (*Array, error) {
	return c.list(ctx, "/rules/"+escape(req.ID)+"/test", req, "id")
}

// TriggerRule runs the rule against existing transactions.
func (c *Client) TriggerRule(ctx context.Context, req *RuleRunRequest) (*Message, error) {
	return c.trigger(ctx, "/rules/"+escape(req.ID)+"/trigger", req, "Rule triggered successfully", "id")
}
