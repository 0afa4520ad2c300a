package services

import (
	"context"

	"consigne-admin/internal/adapters/gateway"
	"consigne-admin/internal/core/domain"
)

// StockService implements the stock page view-model: the inventory of the
// currently selected diffuser plus add/delete mutations, each followed by a
// re-fetch scoped to that diffuser.
type StockService struct {
	stock StockGateway
}

// NewStockService creates a new stock service
func NewStockService(stock StockGateway) *StockService {
	return &StockService{stock: stock}
}

// StockSummary aggregates the current stock list
type StockSummary struct {
	Total  int                          `json:"total"`
	BySize map[domain.ContainerSize]int `json:"by_size"`
}

// Summarize recomputes the aggregate totals from the current list
func Summarize(rows []domain.Stock) StockSummary {
	summary := StockSummary{BySize: make(map[domain.ContainerSize]int)}
	for _, row := range rows {
		summary.Total += row.Quantite
		summary.BySize[row.Contenant.Taille] += row.Quantite
	}
	return summary
}

// ListByDiffuser returns the stock of one diffuser. No selected diffuser
// means an empty list, not an error.
func (s *StockService) ListByDiffuser(ctx context.Context, diffuserID uint) ([]domain.Stock, StockSummary, error) {
	if diffuserID == 0 {
		return []domain.Stock{}, Summarize(nil), nil
	}

	rows, err := s.stock.GetStockByDiffuser(ctx, diffuserID)
	if err != nil {
		return nil, StockSummary{}, err
	}
	return rows, Summarize(rows), nil
}

// AddStockInput is a stock add submission
type AddStockInput struct {
	DiffuserID  uint `json:"diffuserId"`
	ContainerID uint `json:"containerId"`
	Quantity    int  `json:"quantity"`
}

// Add creates a stock row and re-fetches the selected diffuser's list
func (s *StockService) Add(ctx context.Context, input AddStockInput) ([]domain.Stock, StockSummary, error) {
	if input.Quantity < 1 {
		return nil, StockSummary{}, domain.ErrQuantityTooSmall
	}
	if input.DiffuserID == 0 || input.ContainerID == 0 {
		return nil, StockSummary{}, domain.ErrInvalidInput
	}

	req := gateway.AddStockRequest{
		IDDiffuseur: input.DiffuserID,
		IDContenant: input.ContainerID,
		Quantite:    input.Quantity,
	}
	if err := s.stock.AddStock(ctx, req); err != nil {
		return nil, StockSummary{}, err
	}
	return s.ListByDiffuser(ctx, input.DiffuserID)
}

// Delete removes a stock row and re-fetches the selected diffuser's list
func (s *StockService) Delete(ctx context.Context, stockID, diffuserID uint) ([]domain.Stock, StockSummary, error) {
	if stockID == 0 {
		return nil, StockSummary{}, domain.ErrInvalidInput
	}

	if err := s.stock.DeleteStock(ctx, stockID); err != nil {
		return nil, StockSummary{}, err
	}
	return s.ListByDiffuser(ctx, diffuserID)
}
