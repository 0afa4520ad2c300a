package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"consigne-admin/internal/core/domain"
)

// GetGlobalStats fetches the aggregate snapshot
func (c *Client) GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	var stats domain.GlobalStats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, nil, &stats); err != nil {
		return nil, mapErr(err)
	}
	return &stats, nil
}

// GetTopBorrowers fetches the top borrowers ranking
func (c *Client) GetTopBorrowers(ctx context.Context) ([]domain.TopEntry, error) {
	return c.getTop(ctx, "/stats/topEmprunteur")
}

// GetTopDiffusers fetches the top diffusers ranking
func (c *Client) GetTopDiffusers(ctx context.Context) ([]domain.TopEntry, error) {
	return c.getTop(ctx, "/stats/topDiffuseur")
}

// GetTopContainers fetches the most borrowed containers ranking
func (c *Client) GetTopContainers(ctx context.Context) ([]domain.TopEntry, error) {
	return c.getTop(ctx, "/stats/topContenant")
}

func (c *Client) getTop(ctx context.Context, path string) ([]domain.TopEntry, error) {
	var entries []domain.TopEntry
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &entries); err != nil {
		return nil, mapErr(err)
	}
	return entries, nil
}

// GetDiffuserStats fetches the per-diffuser snapshot
func (c *Client) GetDiffuserStats(ctx context.Context, diffuserID uint) (*domain.DiffuserStats, error) {
	path := fmt.Sprintf("/stats/%d", diffuserID)

	var stats domain.DiffuserStats
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &stats); err != nil {
		return nil, mapErr(err)
	}
	return &stats, nil
}

// GetStatsByDateRange fetches the snapshot for a date window. The server
// answers 400 on a bad window; that becomes ErrInvalidDateRange.
func (c *Client) GetStatsByDateRange(ctx context.Context, debut, fin string) (*domain.GlobalStats, error) {
	query := url.Values{}
	query.Set("dateDebut", debut)
	query.Set("dateFin", fin)

	var stats domain.GlobalStats
	err := c.do(ctx, http.MethodGet, "/stats/date", query, nil, &stats)
	if se, ok := statusOf(err); ok && se.Code == http.StatusBadRequest {
		return nil, domain.ErrInvalidDateRange
	}
	if err != nil {
		return nil, mapErr(err)
	}
	return &stats, nil
}
