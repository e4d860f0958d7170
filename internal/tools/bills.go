package tools

import (
	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

func billOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all bills. Can be filtered and paginated with date ranges to calculate payment and paid dates.",
			c.ListBills, "read", "list", "pagination"),
		op("get", "Get details for a specific bill by ID with optional date ranges to calculate payment and paid dates.",
			c.GetBill, "read", "single"),
		op("create", "Create a new bill.",
			c.CreateBill, "write", "create"),
		op("update", "Update an existing bill.",
			c.UpdateBill, "write", "update"),
		op("delete", "Delete a bill.",
			c.DeleteBill, "write", "delete"),
		op("list_transactions", "List all transactions associated with a bill, optionally limited to date ranges and transaction types.",
			c.ListBillTransactions, "read", "list", "transactions", "pagination"),
		op("list_attachments", "List all attachments for a bill.",
			c.ListBillAttachments, "read", "list", "attachments", "pagination"),
		op("list_rules", "List all rules that have an action to set the bill to this bill.",
			c.ListBillRules, "read", "list", "rules", "pagination"),
	}
}

func piggyBankOperations(c *firefly.Client) []registry.OperationSpec {
	return []registry.OperationSpec{
		op("list", "List all piggy banks. Can be filtered and paginated.",
			c.ListPiggyBanks, "read", "list", "pagination"),
		op("get", "Get details for a specific piggy bank by ID.",
			c.GetPiggyBank, "read", "single"),
		op("create", "Create a new piggy bank.",
			c.CreatePiggyBank, "write", "create"),
		op("update", "Update an existing piggy bank.",
			c.UpdatePiggyBank, "write", "update"),
		op("delete", "Delete a piggy bank.",
			c.DeletePiggyBank, "write", "delete"),
		op("list_events", "List all events linked to a piggy bank (adding and removing money).",
			c.ListPiggyBankEvents, "read", "list", "events", "pagination"),
		op("list_attachments", "List all attachments for a piggy bank.",
			c.ListPiggyBankAttachments, "read", "list", "attachments", "pagination"),
	}
}
