package handlers

import (
	"bytes"
	"errors"
	"strconv"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/core/services"
	"consigne-admin/internal/pkg/response"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the read-only reporting views
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Overview serves the dashboard aggregates
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.statsService.GetOverview(c.Context())
	if err != nil {
		return failRemote(c, err)
	}

	return response.Success(c, "Statistiques récupérées", overview)
}

// ForDiffuser serves the per-diffuser snapshot
func (h *StatsHandler) ForDiffuser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant de diffuseur invalide")
	}

	stats, err := h.statsService.GetForDiffuser(c.Context(), uint(id))
	if err != nil {
		return failRemote(c, err)
	}

	return response.Success(c, "Statistiques du diffuseur récupérées", stats)
}

// ByDateRange serves the snapshot for a date window
func (h *StatsHandler) ByDateRange(c *fiber.Ctx) error {
	stats, err := h.statsService.GetByDateRange(c.Context(), c.Query("dateDebut"), c.Query("dateFin"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return response.BadRequest(c, "Dates invalides")
		}
		return failRemote(c, err)
	}

	return response.Success(c, "Statistiques de la période récupérées", stats)
}

// Charts renders the dashboard rankings as bar charts
func (h *StatsHandler) Charts(c *fiber.Ctx) error {
	overview, err := h.statsService.GetOverview(c.Context())
	if err != nil {
		return failRemote(c, err)
	}

	page := components.NewPage()
	page.PageTitle = "Consigne - Statistiques"
	page.AddCharts(
		loanPie(overview.Global),
		rankingBar("Top emprunteurs", overview.TopBorrowers),
		rankingBar("Top diffuseurs", overview.TopDiffusers),
		rankingBar("Contenants les plus empruntés", overview.TopContainers),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return response.InternalServerError(c, "Erreur de rendu des graphiques")
	}
	return c.Type("html").Send(buf.Bytes())
}

func rankingBar(title string, entries []domain.TopEntry) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	names := make([]string, 0, len(entries))
	values := make([]opts.BarData, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Nom)
		values = append(values, opts.BarData{Value: entry.Total})
	}

	bar.SetXAxis(names).AddSeries("emprunts", values)
	return bar
}

func loanPie(global *domain.GlobalStats) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Répartition des emprunts"}),
	)

	pie.AddSeries("emprunts", []opts.PieData{
		{Name: "Actifs", Value: global.EmpruntsActifs},
		{Name: "Rendus", Value: global.EmpruntsRendus},
	})
	return pie
}
