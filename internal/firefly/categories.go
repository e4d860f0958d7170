package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListCategories(ctx context.Context, req *PageRequest) (*Array, error) {
	return c.list(ctx, "/categories", req)
}

func (c *Client) GetCategory(ctx context.Context, req *IDRangeRequest) (*Single, error) {
	return c.get(ctx, "/categories/"+escape(req.ID), req, "id")
}

func (c *Client) CreateCategory(ctx context.Context, req *Category) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/categories", req)
}

func (c *Client) UpdateCategory(ctx context.Context, req *CategoryUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/categories/"+escape(req.ID), req.CategoryUpdate)
}

func (c *Client) DeleteCategory(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/categories/"+escape(req.ID), "Category deleted successfully")
}

func (c *Client) ListCategoryTransactions(ctx context.Context, req *TransactionsOfRequest) (*Array, error) {
	return c.list(ctx, "/categories/"+escape(req.ID)+"/transactions", req, "id")
}

func (c *Client) ListCategoryAttachments(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/categories/"+escape(req.ID)+"/attachments", req, "id")
}
