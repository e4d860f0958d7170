package firefly

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

func (c *Client) ListTransactions(ctx context.Context, req *TransactionListRequest) (*Array, error) {
	return c.list(ctx, "/transactions", req)
}

func (c *Client) GetTransaction(ctx context.Context, req *IDRequest) (*Single, error) {
	return c.get(ctx, "/transactions/"+escape(req.ID), nil)
}

func (c *Client) CreateTransaction(ctx context.Context, req *TransactionStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/transactions", req)
}

func (c *Client) UpdateTransaction(ctx context.Context, req *TransactionUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/transactions/"+escape(req.ID), req.TransactionUpdate)
}

func (c *Client) DeleteTransaction(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/transactions/"+escape(req.ID), "Transaction deleted successfully")
}

func (c *Client) ListTransactionAttachments(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/transactions/"+escape(req.ID)+"/attachments", req, "id")
}

func (c *Client) ListTransactionPiggyBankEvents(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/transactions/"+escape(req.ID)+"/piggy-bank-events", req, "id")
}

type bulkBody struct {
	TransactionIDs []int `json:"transaction_ids"`
}

// BulkCategorize assigns one category to every listed transaction.
func (c *Client) BulkCategorize(ctx context.Context, req *BulkCategorizeRequest) (*Message, error) {
	query := url.Values{"query": {"category_name=" + req.CategoryName}}
	if err := c.do(ctx, http.MethodPost, "/data/bulk/transactions", query, bulkBody{TransactionIDs: req.TransactionIDs}, nil); err != nil {
		return nil, err
	}
	return &Message{Message: "Transactions categorized successfully"}, nil
}

// BulkTag adds the given tags to every listed transaction.
func (c *Client) BulkTag(ctx context.Context, req *BulkTagRequest) (*Message, error) {
	query := url.Values{"query": {"tags=" + strings.Join(req.TagNames, ",")}}
	if err := c.do(ctx, http.MethodPost, "/data/bulk/transactions", query, bulkBody{TransactionIDs: req.TransactionIDs}, nil); err != nil {
		return nil, err
	}
	return &Message{Message: "Transactions tagged successfully"}, nil
}
