package firefly

import (
	"context"
	"net/http"
)

func (c *Client) ListAccounts(ctx context.Context, req *AccountListRequest) (*Array, error) {
	return c.list(ctx, "/accounts", req)
}

func (c *Client) GetAccount(ctx context.Context, req *AccountGetRequest) (*Single, error) {
	return c.get(ctx, "/accounts/"+escape(req.ID), req, "id")
}

func (c *Client) CreateAccount(ctx context.Context, req *AccountStore) (*Single, error) {
	return c.send(ctx, http.MethodPost, "/accounts", req)
}

func (c *Client) UpdateAccount(ctx context.Context, req *AccountUpdateRequest) (*Single, error) {
	return c.send(ctx, http.MethodPut, "/accounts/"+escape(req.ID), req.AccountUpdate)
}

func (c *Client) DeleteAccount(ctx context.Context, req *IDRequest) (*Message, error) {
	return c.remove(ctx, "/accounts/"+escape(req.ID), "Account deleted successfully")
}

func (c *Client) ListAccountTransactions(ctx context.Context, req *TransactionsOfRequest) (*Array, error) {
	return c.list(ctx, "/accounts/"+escape(req.ID)+"/transactions", req, "id")
}

func (c *Client) ListAccountAttachments(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/accounts/"+escape(req.ID)+"/attachments", req, "id")
}

func (c *Client) ListAccountPiggyBanks(ctx context.Context, req *IDPageRequest) (*Array, error) {
	return c.list(ctx, "/accounts/"+escape(req.ID)+"/piggy-banks", req, "id")
}
