package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListBills(ctx context.Context, req *RangePageRequest) (*Array, error) {
	return c.list(ctx, "/bills", req)
}

func (c *Client) GetBill(ctx context.Context, req *IDRangeRequest) (*Single, error) {
	return c.get(ctx, "/bills/"+escape(req.ID), req, "id")
}

func (c *Client) CreateBill(ctx context.Context, req *BillStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/bills", req)
}

func (c *Client) UpdateBill(ctx context.Context, req *BillUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/bills/"+escape(req.ID), req.BillUpdate)
}

func (c *Client) DeleteBill(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/bills/"+escape(req.ID), "Bill deleted successfully")
}

func (c *Client) ListBillTransactions(ctx context.Context, req *TransactionsOfRequest) (*Array, error) {
	return c.list(ctx, "/bills/"+escape(req.ID)+"/transactions", req, "id")
}

func (c *Client) ListBillAttachments(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/bills/"+escape(req.ID)+"/attachments", req, "id")
}

// ListBillRules lists the rules whose actions link transactions to the bill.
func (c *Client) ListBillRules(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/bills/"+escape(req.ID)+"/rules", req, "id")
}
