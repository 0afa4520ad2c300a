package services

import (
	"context"
	"sync"
	"time"

	"consigne-admin/internal/core/domain"
)

// StatsService serves the read-only reporting views. No mutation logic
// lives here.
type StatsService struct {
	stats StatsGateway
}

// NewStatsService creates a new stats service
func NewStatsService(stats StatsGateway) *StatsService {
	return &StatsService{stats: stats}
}

// Overview is the dashboard payload: the global snapshot plus the three
// rankings.
type Overview struct {
	Global        *domain.GlobalStats `json:"global"`
	TopBorrowers  []domain.TopEntry   `json:"topBorrowers"`
	TopDiffusers  []domain.TopEntry   `json:"topDiffusers"`
	TopContainers []domain.TopEntry   `json:"topContainers"`
}

// GetOverview fetches the dashboard aggregates concurrently
func (s *StatsService) GetOverview(ctx context.Context) (*Overview, error) {
	var (
		ov   Overview
		errs [4]error
		wg   sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		ov.Global, errs[0] = s.stats.GetGlobalStats(ctx)
	}()
	go func() {
		defer wg.Done()
		ov.TopBorrowers, errs[1] = s.stats.GetTopBorrowers(ctx)
	}()
	go func() {
		defer wg.Done()
		ov.TopDiffusers, errs[2] = s.stats.GetTopDiffusers(ctx)
	}()
	go func() {
		defer wg.Done()
		ov.TopContainers, errs[3] = s.stats.GetTopContainers(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &ov, nil
}

// GetForDiffuser fetches the per-diffuser snapshot
func (s *StatsService) GetForDiffuser(ctx context.Context, diffuserID uint) (*domain.DiffuserStats, error) {
	if diffuserID == 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.stats.GetDiffuserStats(ctx, diffuserID)
}

// GetByDateRange fetches the snapshot for a date window. The window is
// validated locally before the server is asked.
func (s *StatsService) GetByDateRange(ctx context.Context, debut, fin string) (*domain.GlobalStats, error) {
	start, err := time.Parse("2006-01-02", debut)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", fin)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}

	return s.stats.GetStatsByDateRange(ctx, debut, fin)
}
