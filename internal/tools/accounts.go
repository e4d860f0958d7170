package tools

import (
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func accountOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all accounts. Can be filtered by type, paginated, and include balance on specific date.",
			c.ListAccounts, "read", "list", "pagination"),
		op("get", "Get details for a specific account by ID.",
			c.GetAccount, "read", "single"),
		op("create", "Create a new account.",
			c.CreateAccount, "write", "create"),
		op("update", "Update an existing account.",
			c.UpdateAccount, "write", "update"),
		op("delete", "Delete an account.",
			c.DeleteAccount, "write", "delete"),
		op("list_transactions", "List all transactions for a specific account with optional date and type filters.",
			c.ListAccountTransactions, "read", "list", "transactions", "pagination"),
		op("list_attachments", "List all attachments for a specific account.",
			c.ListAccountAttachments, "read", "list", "attachments", "pagination"),
		op("list_piggy_banks", "List all piggy banks for a specific account.",
			c.ListAccountPiggyBanks, "read", "list", "piggy_banks", "pagination"),
	}
}
