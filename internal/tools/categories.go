package tools

import (
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func categoryOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all categories. Can be filtered and paginated.",
			c.ListCategories, "read", "list", "pagination"),
		op("get", "Get details for a specific category by ID.",
			c.GetCategory, "read", "single"),
		op("create", "Create a new category.",
			c.CreateCategory, "write", "create"),
		op("update", "Update an existing category.",
			c.UpdateCategory, "write", "update"),
		op("delete", "Delete a category.",
			c.DeleteCategory, "write", "delete"),
		op("list_transactions", "List all transactions in a category, optionally limited to date ranges.",
			c.ListCategoryTransactions, "read", "list", "transactions", "pagination"),
		op("list_attachments", "List all attachments for a category.",
			c.ListCategoryAttachments, "read", "list", "attachments", "pagination"),
	}
}
