package services

import (
	"context"
	"testing"

	"consigne-admin/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsGateway struct {
	global    domain.GlobalStats
	borrowers []domain.TopEntry

	rangeCalled bool
}

func (f *fakeStatsGateway) GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	g := f.global
	return &g, nil
}

func (f *fakeStatsGateway) GetTopBorrowers(ctx context.Context) ([]domain.TopEntry, error) {
	return f.borrowers, nil
}

func (f *fakeStatsGateway) GetTopDiffusers(ctx context.Context) ([]domain.TopEntry, error) {
	return []domain.TopEntry{{Nom: "Epicerie", Total: 12}}, nil
}

func (f *fakeStatsGateway) GetTopContainers(ctx context.Context) ([]domain.TopEntry, error) {
	return []domain.TopEntry{{Nom: "bocal 1L", Total: 30}}, nil
}

func (f *fakeStatsGateway) GetDiffuserStats(ctx context.Context, diffuserID uint) (*domain.DiffuserStats, error) {
	return &domain.DiffuserStats{DiffuseurID: diffuserID, TotalEmprunts: 5}, nil
}

func (f *fakeStatsGateway) GetStatsByDateRange(ctx context.Context, debut, fin string) (*domain.GlobalStats, error) {
	f.rangeCalled = true
	g := f.global
	return &g, nil
}

func TestStatsServiceGetOverview(t *testing.T) {
	fake := &fakeStatsGateway{
		global:    domain.GlobalStats{TotalEmprunts: 40, EmpruntsActifs: 15, EmpruntsRendus: 25},
		borrowers: []domain.TopEntry{{Nom: "Dupont Marie", Total: 8}},
	}
	svc := NewStatsService(fake)

	ov, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, ov.Global.TotalEmprunts)
	assert.Len(t, ov.TopBorrowers, 1)
	assert.Len(t, ov.TopDiffusers, 1)
	assert.Len(t, ov.TopContainers, 1)
}

func TestStatsServiceGetForDiffuser(t *testing.T) {
	svc := NewStatsService(&fakeStatsGateway{})

	t.Run("zero id is rejected", func(t *testing.T) {
		_, err := svc.GetForDiffuser(context.Background(), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("snapshot for one diffuser", func(t *testing.T) {
		stats, err := svc.GetForDiffuser(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), stats.DiffuseurID)
	})
}

func TestStatsServiceGetByDateRange(t *testing.T) {
	t.Run("unparseable dates are rejected before the server is asked", func(t *testing.T) {
		fake := &fakeStatsGateway{}
		svc := NewStatsService(fake)

		_, err := svc.GetByDateRange(context.Background(), "15/06/2025", "2025-06-30")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		assert.False(t, fake.rangeCalled)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		fake := &fakeStatsGateway{}
		svc := NewStatsService(fake)

		_, err := svc.GetByDateRange(context.Background(), "2025-06-30", "2025-06-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		assert.False(t, fake.rangeCalled)
	})

	t.Run("valid window", func(t *testing.T) {
		fake := &fakeStatsGateway{global: domain.GlobalStats{TotalEmprunts: 3}}
		svc := NewStatsService(fake)

		stats, err := svc.GetByDateRange(context.Background(), "2025-06-01", "2025-06-30")
		require.NoError(t, err)
		assert.True(t, fake.rangeCalled)
		assert.Equal(t, 3, stats.TotalEmprunts)
	})
}
