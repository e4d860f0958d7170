package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListRuleGroups(ctx context.Context, req *PageRequest) (*Array, error) {
	return c.list(ctx, "/rule-groups", req)
}

func (c *Client) GetRuleGroup(ctx context.Context, req *IDRequest) (*Single, error) {
	return c.get(ctx, "/rule-groups/"+escape(req.ID), nil)
}

func (c *Client) CreateRuleGroup(ctx context.Context, req *RuleGroupStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/rule-groups", req)
}

func (c *Client) UpdateRuleGroup(ctx context.Context, req *RuleGroupUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/rule-groups/"+escape(req.ID), req.RuleGroupUpdate)
}

func (c *Client) DeleteRuleGroup(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/rule-groups/"+escape(req.ID), "Rule group deleted successfully")
}

func (c *Client) ListRuleGroupRules(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/rule-groups/"+escape(req.ID)+"/rules", req, "id")
}

func (c *Client) TestRuleGroup(ctx context.Context, req *RuleGroupTestRequest) (*Array, error) {
	return c.list(ctx, "/rule-groups/"+escape(req.ID)+"/test", req, "id")
}

func (c *Client) TriggerRuleGroup(ctx context.Context, req *RuleGroupTriggerRequest) (*Message, error) {
	return c.trigger(ctx, "/rule-groups/"+escape(req.ID)+"/trigger", req, "Rule group triggered successfully", "id")
}
