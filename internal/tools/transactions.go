package tools

import (
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func transactionOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all transactions. Can be filtered by date range, type, and paginated.",
			c.ListTransactions, "read", "list", "pagination"),
		op("get", "Get details for a specific transaction by ID.",
			c.GetTransaction, "read", "single"),
		op("create", "Create a new transaction.",
			c.CreateTransaction, "write", "create"),
		op("update", "Update an existing transaction.",
			c.UpdateTransaction, "write", "update"),
		op("delete", "Delete a transaction.",
			c.DeleteTransaction, "write", "delete"),
		op("list_attachments", "List all attachments for a specific transaction.",
			c.ListTransactionAttachments, "read", "list", "attachments", "pagination"),
		op("list_piggy_bank_events", "List all piggy bank events for a specific transaction.",
			c.ListTransactionPiggyBankEvents, "read", "list", "piggy_banks", "pagination"),
		op("bulk_categorize", "Bulk categorize multiple transactions by assigning a category to all of them.",
			c.BulkCategorize, "write", "bulk", "categorize"),
		op("bulk_tag", "Bulk tag multiple transactions by assigning one or more tags to all of them.",
			c.BulkTag, "write", "bulk", "tag"),
	}
}
