package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListBudgets(ctx context.Context, req *RangePageRequest) (*Array, error) {
	return c.list(ctx, "/budgets", req)
}

func (c *Client) GetBudget(ctx context.Context, req *IDRangeRequest) (*Single, error) {
	return c.get(ctx, "/budgets/"+escape(req.ID), req, "id")
}

func (c *Client) CreateBudget(ctx context.Context, req *BudgetStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/budgets", req)
}

func (c *Client) UpdateBudget(ctx context.Context, req *BudgetUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/budgets/"+escape(req.ID), req.BudgetUpdate)
}

func (c *Client) DeleteBudget(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/budgets/"+escape(req.ID), "Budget deleted successfully")
}

func (c *Client) ListBudgetLimits(ctx context.Context, req *BudgetLimitsRequest) (*Array, error) {
	return c.list(ctx, "/budgets/"+escape(req.ID)+"/limits", req, "id")
}

func budgetLimitPath(budgetID, limitID string) string {
	return "/budgets/" + escape(budgetID) + "/limits/" + escape(limitID)
}

func (c *Client) GetBudgetLimit(ctx context.Context, req *BudgetLimitRequest) (*Single, error) {
	return c.get(ctx, budgetLimitPath(req.BudgetID, req.LimitID), nil)
}

func (c *Client) CreateBudgetLimit(ctx context.Context, req *BudgetLimitCreateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/budgets/"+escape(req.BudgetID)+"/limits", req.BudgetLimitStore)
}

func (c *Client) UpdateBudgetLimit(ctx context.Context, req *BudgetLimitUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, budgetLimitPath(req.BudgetID, req.LimitID), req.BudgetLimit)
}

func (c *Client) DeleteBudgetLimit(ctx context.Context, req *BudgetLimitRequest) (*Message, error) {
	return c.remove(ctx, budgetLimitPath(req.BudgetID, req.LimitID), "Budget limit deleted successfully")
}

func (c *Client) ListBudgetTransactions(ctx context.Context, req *BudgetTransactionsRequest) (*Array, error) {
	return c.list(ctx, "/budgets/"+escape(req.ID)+"/transactions", req, "id")
}

func (c *Client) ListBudgetAttachments(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/budgets/"+escape(req.ID)+"/attachments", req, "id")
}

func (c *Client) ListTransactionsWithoutBudget(ctx context.Context, req *RangePageRequest) (*Array, error) {
	return c.list(ctx, "/budgets/transactions-without-budget", req)
}
