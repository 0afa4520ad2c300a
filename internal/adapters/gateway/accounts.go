package gateway

import (
	"context"
	"fmt"
	"net/http"

	"consigne-admin/internal/core/domain"
)

// LoginRequest is the loginAdmin request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the identity returned by loginAdmin
type LoginResult struct {
	ID       uint        `json:"id"`
	Mail     string      `json:"mail"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// GetAccounts fetches every account
func (c *Client) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.do(ctx, http.MethodGet, "/account/getAll", nil, nil, &accounts); err != nil {
		return nil, mapErr(err)
	}
	return accounts, nil
}

// AddAccount creates a new account
func (c *Client) AddAccount(ctx context.Context, account domain.Account) error {
	return mapErr(c.do(ctx, http.MethodPost, "/account/add", nil, account, nil))
}

// UpdateAccount overwrites an account's details
func (c *Client) UpdateAccount(ctx context.Context, account domain.Account) error {
	path := fmt.Sprintf("/account/updateAccountDetails/%d", account.ID)
	return mapErr(c.do(ctx, http.MethodPut, path, nil, account, nil))
}

// DeleteAccount soft-deletes an account (status flag flip, not row removal)
func (c *Client) DeleteAccount(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/account/delete/%d", id)
	return mapErr(c.do(ctx, http.MethodPatch, path, nil, nil, nil))
}

// LoginAdmin authenticates admin credentials against the remote API. The
// role gate (only role 2 establishes a session) is enforced by AuthService.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/account/loginAdmin", nil, LoginRequest{Email: email, Password: password}, &result)
	if err != nil {
		if se, ok := statusOf(err); ok && (se.Code == http.StatusUnauthorized || se.Code == http.StatusNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, mapErr(err)
	}
	return &result, nil
}
