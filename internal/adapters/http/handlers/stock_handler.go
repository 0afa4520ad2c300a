package handlers

import (
	"errors"
	"strconv"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/core/services"
	"consigne-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StockHandler handles the /admin/stock page
type StockHandler struct {
	stockService *services.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *services.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// Page serves the stock rows of the selected diffuser. Without a selected
// diffuser the page shows an empty list.
func (h *StockHandler) Page(c *fiber.Ctx) error {
	diffuserID, _ := strconv.ParseUint(c.Query("diffuseur", "0"), 10, 32)

	rows, summary, err := h.stockService.ListByDiffuser(c.Context(), uint(diffuserID))
	if err != nil {
		return failRemote(c, err)
	}

	return response.Success(c, "Stock récupéré", fiber.Map{
		"stock":   rows,
		"summary": summary,
	})
}

// Add creates a stock row for the selected diffuser
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var input services.AddStockInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}

	rows, summary, err := h.stockService.Add(c.Context(), input)
	if err != nil {
		return h.failStock(c, err)
	}

	return response.Created(c, "Stock ajouté", fiber.Map{
		"stock":   rows,
		"summary": summary,
	})
}

// Delete removes a stock row. The client confirms before calling.
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant de stock invalide")
	}
	diffuserID, _ := strconv.ParseUint(c.Query("diffuseur", "0"), 10, 32)

	rows, summary, err := h.stockService.Delete(c.Context(), uint(id), uint(diffuserID))
	if err != nil {
		return h.failStock(c, err)
	}

	return response.Success(c, "Stock supprimé", fiber.Map{
		"stock":   rows,
		"summary": summary,
	})
}

func (h *StockHandler) failStock(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrQuantityTooSmall) {
		return response.BadRequest(c, "La quantité doit être d'au moins 1")
	}
	return failRemote(c, err)
}
