package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListPiggyBanks(ctx context.Context, req *PageRequest) (*Array, error) {
	return c.list(ctx, "/piggy-banks", req)
}

func (c *Client) GetPiggyBank(ctx context.Context, req *IDRequest) (*Single, error) {
	return c.get(ctx, "/piggy-banks/"+escape(req.ID), nil)
}

func (c *Client) CreatePiggyBank(ctx context.Context, req *PiggyBankStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/piggy-banks", req)
}

func (c *Client) UpdatePiggyBank(ctx context.Context, req *PiggyBankUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/piggy-banks/"+escape(req.ID), req.PiggyBankUpdate)
}

func (c *Client) DeletePiggyBank(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/piggy-banks/"+escape(req.ID), "Piggy bank deleted successfully")
}

// ListPiggyBankEvents lists money added to and removed from the piggy bank.
func (c *Client) ListPiggyBankEvents(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/piggy-banks/"+escape(req.ID)+"/events", req, "id")
}

func (c *Client) ListPiggyBankAttachments(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/piggy-banks/"+escape(req.ID)+"/attachments", req, "id")
}
