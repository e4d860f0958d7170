package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListTags(ctx context.Context, req *PageRequest) (*Array, error) {
	return c.list(ctx, "/tags", req)
}

func (c *Client) GetTag(ctx context.Context, req *IDPageRequest) (*Single, error) {
	return c.get(ctx, "/tags/"+escape(req.ID), req, "id")
}

func (c *Client) CreateTag(ctx context.Context, req *TagModelStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/tags", req)
}

func (c *Client) UpdateTag(ctx context.Context, req *TagUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/tags/"+escape(req.ID), req.TagUpdate)
}

func (c *Client) DeleteTag(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/tags/"+escape(req.ID), "Tag deleted successfully")
}

func (c *Client) ListTagTransactions(ctx context.Context, req *TransactionsOfRequest) (*Array, error) {
	return c.list(ctx, "/tags/"+escape(req.ID)+"/transactions", req, "id")
}

func (c *Client) ListTagAttachments(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/tags/"+escape(req.ID)+"/attachments", req, "id")
}
