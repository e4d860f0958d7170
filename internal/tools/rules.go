package tools

import (
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func ruleOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all rules. Can be filtered and paginated.",
			c.ListRules, "read", "list", "pagination"),
		op("get", "Get details for a specific rule by ID.",
			c.GetRule, "read", "single"),
		op("create", "Create a new rule.",
			c.CreateRule, "write", "create"),
		op("update", "Update an existing rule.",
			c.UpdateRule, "write", "update"),
		op("delete", "Delete a rule.",
			c.DeleteRule, "write", "delete"),
		op("test", "Test which transactions would be hit by the rule. No changes will be made. Can be limited by date range and accounts.",
			c.TestRule, "read", "test", "simulation"),
		op("trigger", "Fire the rule on your transactions. Changes will be made by the rule! Can be limited by date range and accounts.",
			c.TriggerRule, "write", "trigger", "execute"),
	}
}

func ruleGroupOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all rule groups. Can be filtered and paginated.",
			c.ListRuleGroups, "read", "list", "pagination"),
		op("get", "Get details for a specific rule group by ID.",
			c.GetRuleGroup, "read", "single"),
		op("create", "Create a new rule group.",
			c.CreateRuleGroup, "write", "create"),
		op("update", "Update an existing rule group.",
			c.UpdateRuleGroup, "write", "update"),
		op("delete", "Delete a rule group.",
			c.DeleteRuleGroup, "write", "delete"),
		op("list_rules", "List rules in a specific rule group. Can be paginated.",
			c.ListRuleGroupRules, "read", "list", "rules", "pagination"),
		op("test", "Test which transactions would be hit by the rule group. No changes will be made. Can be limited by date range, search limits, and accounts.",
			c.TestRuleGroup, "read", "test", "simulation"),
		op("trigger", "Fire the rule group on your transactions. Changes will be made by the rules in the rule group! Can be limited by date range and accounts.",
			c.TriggerRuleGroup, "write", "trigger", "execute"),
	}
}
