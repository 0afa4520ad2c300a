package gateway

import (
	"context"
	"fmt"
	"net/http"

	"consigne-admin/internal/core/domain"
)

// AddStockRequest is the stock add body
type AddStockRequest struct {
	IDDiffuseur uint `json:"idDiffuseur"`
	IDContenant uint `json:"idContenant"`
	Quantite    int  `json:"quantite"`
}

// GetStockByDiffuser fetches the stock rows of one diffuser
func (c *Client) GetStockByDiffuser(ctx context.Context, diffuserID uint) ([]domain.Stock, error) {
	path := fmt.Sprintf("/stock/getByDiffuseur/%d", diffuserID)

	var stock []domain.Stock
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &stock); err != nil {
		return nil, mapErr(err)
	}
	return stock, nil
}

// AddStock creates a stock row
func (c *Client) AddStock(ctx context.Context, req AddStockRequest) error {
	return mapErr(c.do(ctx, http.MethodPost, "/stock/add", nil, req, nil))
}

// DeleteStock removes a stock row by id
func (c *Client) DeleteStock(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/stock/delete/%d", id)
	return mapErr(c.do(ctx, http.MethodDelete, path, nil, nil, nil))
}
