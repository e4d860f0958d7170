package tools

import (
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func budgetOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all budgets. Can be filtered by date range to include spending info.",
			c.ListBudgets, "read", "list", "pagination"),
		op("get", "Get details for a specific budget by ID. Can include spending info for date range.",
			c.GetBudget, "read", "single"),
		op("create", "Create a new budget.",
			c.CreateBudget, "write", "create"),
		op("update", "Update an existing budget.",
			c.UpdateBudget, "write", "update"),
		op("delete", "Delete a budget.",
			c.DeleteBudget, "write", "delete"),
		op("list_limits", "List all budget limits for a specific budget with spending info.",
			c.ListBudgetLimits, "read", "list", "limits", "pagination"),
		op("get_limit", "Get details for a specific budget limit by budget ID and limit ID.",
			c.GetBudgetLimit, "read", "single", "limits"),
		op("create_limit", "Create a new budget limit.",
			c.CreateBudgetLimit, "write", "create", "limits"),
		op("update_limit", "Update an existing budget limit.",
			c.UpdateBudgetLimit, "write", "update", "limits"),
		op("delete_limit", "Delete a budget limit.",
			c.DeleteBudgetLimit, "write", "delete", "limits"),
		op("list_transactions", "List all transactions for a specific budget with optional date and type filters.",
			c.ListBudgetTransactions, "read", "list", "transactions", "pagination"),
		op("list_attachments", "List all attachments for a specific budget.",
			c.ListBudgetAttachments, "read", "list", "attachments", "pagination"),
		op("list_transactions_without_budget", "List all transactions that are not linked to any budget.",
			c.ListTransactionsWithoutBudget, "read", "list", "transactions", "pagination", "unlinked"),
	}
}
