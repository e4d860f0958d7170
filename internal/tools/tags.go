package tools

import (
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func tagOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all tags. Can be filtered and paginated.",
			c.ListTags, "read", "list", "pagination"),
		op("get", "Get details for a specific tag by ID.",
			c.GetTag, "read", "single"),
		op("create", "Create a new tag.",
			c.CreateTag, "write", "create"),
		op("update", "Update an existing tag.",
			c.UpdateTag, "write", "update"),
		op("delete", "Delete a tag.",
			c.DeleteTag, "write", "delete"),
		op("list_transactions", "List all transactions for a tag, optionally limited to date ranges.",
			c.ListTagTransactions, "read", "list", "transactions", "pagination"),
		op("list_attachments", "List all attachments for a tag.",
			c.ListTagAttachments, "read", "list", "attachments", "pagination"),
	}
}
