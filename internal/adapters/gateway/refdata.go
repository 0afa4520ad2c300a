package gateway

import (
	"context"
	"net/http"

	"consigne-admin/internal/core/domain"
)

// GetDiffusers fetches every diffuser
func (c *Client) GetDiffusers(ctx context.Context) ([]domain.Diffuser, error) {
	var diffusers []domain.Diffuser
	if err := c.do(ctx, http.MethodGet, "/diffuseur/getAll", nil, nil, &diffusers); err != nil {
		return nil, mapErr(err)
	}
	return diffusers, nil
}

// GetCollectors fetches every collector
func (c *Client) GetCollectors(ctx context.Context) ([]domain.Collector, error) {
	var collectors []domain.Collector
	if err := c.do(ctx, http.MethodGet, "/collecteur/getAll", nil, nil, &collectors); err != nil {
		return nil, mapErr(err)
	}
	return collectors, nil
}

// GetContainers fetches the container reference list
func (c *Client) GetContainers(ctx context.Context) ([]domain.Container, error) {
	var containers []domain.Container
	if err := c.do(ctx, http.MethodGet, "/contenant/getAll", nil, nil, &containers); err != nil {
		return nil, mapErr(err)
	}
	return containers, nil
}
