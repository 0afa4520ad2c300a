package handlers

import (
	"errors"
	"strconv"
	"time"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/core/services"
	"consigne-admin/internal/core/view"
	"consigne-admin/internal/pkg/pagination"
	"consigne-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles the /admin/emprunt page
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// Page serves the loan page: the derived view slice plus the selection
// lists for the four workflow dialogs. View state travels in the query
// string (status, q, sort, desc, page, size).
func (h *LoanHandler) Page(c *fiber.Ctx) error {
	ws, err := h.loanService.LoadWorkspace(c.Context())
	if err != nil {
		return failRemote(c, err)
	}

	loanView := view.ApplyLoanQuery(ws.Loans, loanQueryFromRequest(c), time.Now())

	return response.Success(c, "Emprunts récupérés", fiber.Map{
		"view":       loanView,
		"borrowers":  ws.Borrowers,
		"diffusers":  ws.Diffusers,
		"collectors": ws.Collectors,
		"containers": ws.Containers,
	})
}

func loanQueryFromRequest(c *fiber.Ctx) view.LoanQuery {
	status := view.StatusFilter(c.Query("status", string(view.StatusAll)))
	if status != view.StatusActive && status != view.StatusReturned {
		status = view.StatusAll
	}

	return view.LoanQuery{
		Status:   status,
		Search:   c.Query("q"),
		SortKey:  view.LoanSortKey(c.Query("sort", string(view.SortByID))),
		SortDesc: c.QueryBool("desc"),
		Window:   pagination.GetParams(c),
	}
}

// Create handles the "new loan" submission
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var input services.CreateLoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}

	loans, err := h.loanService.Create(c.Context(), input)
	if err != nil {
		return h.failLoan(c, err)
	}

	return response.Created(c, "Emprunt créé", fiber.Map{"loans": loans})
}

// Edit handles a full loan overwrite. Allowed whatever the overdue status.
func (h *LoanHandler) Edit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant d'emprunt invalide")
	}

	var loan domain.Loan
	if err := c.BodyParser(&loan); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}
	loan.ID = uint(id)

	loans, err := h.loanService.Edit(c.Context(), loan)
	if err != nil {
		return h.failLoan(c, err)
	}

	return response.Success(c, "Emprunt modifié", fiber.Map{"loans": loans})
}

// Prolong asks the server for its fixed one-week extension
func (h *LoanHandler) Prolong(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant d'emprunt invalide")
	}

	loans, err := h.loanService.Prolong(c.Context(), uint(id))
	if err != nil {
		return h.failLoan(c, err)
	}

	return response.Success(c, "Emprunt prolongé d'une semaine", fiber.Map{"loans": loans})
}

// PartialReturnRequest is the partial-return form body
type PartialReturnRequest struct {
	Quantity    int  `json:"quantity"`
	CollectorID uint `json:"collectorId"`
}

// PartialReturn registers a partial return
func (h *LoanHandler) PartialReturn(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant d'emprunt invalide")
	}

	var req PartialReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}

	loans, err := h.loanService.PartialReturn(c.Context(), services.PartialReturnInput{
		LoanID:      uint(id),
		Quantity:    req.Quantity,
		CollectorID: req.CollectorID,
	})
	if err != nil {
		return h.failLoan(c, err)
	}

	return response.Success(c, "Retour partiel enregistré", fiber.Map{"loans": loans})
}

// TerminateRequest is the terminate form body
type TerminateRequest struct {
	Quantity    int  `json:"quantity"`
	CollectorID uint `json:"collectorId"`
}

// Terminate closes a loan with its return manifest
func (h *LoanHandler) Terminate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant d'emprunt invalide")
	}

	var req TerminateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}

	loans, err := h.loanService.Terminate(c.Context(), services.TerminateInput{
		LoanID:      uint(id),
		Quantity:    req.Quantity,
		CollectorID: req.CollectorID,
	})
	if err != nil {
		return h.failLoan(c, err)
	}

	return response.Success(c, "Emprunt terminé", fiber.Map{"loans": loans})
}

func (h *LoanHandler) failLoan(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrLoanOverdue):
		return response.Conflict(c, "Emprunt en retard : le contenant appartient désormais à l'emprunteur")
	case errors.Is(err, domain.ErrLoanNotFound):
		return response.NotFound(c, "Emprunt introuvable")
	case errors.Is(err, domain.ErrQuantityTooSmall):
		return response.BadRequest(c, "La quantité doit être d'au moins 1")
	case errors.Is(err, domain.ErrQuantityExceeded):
		return response.BadRequest(c, "La quantité rendue dépasse la quantité restante")
	case errors.Is(err, domain.ErrCollectorRequired):
		return response.BadRequest(c, "Un collecteur doit être sélectionné")
	default:
		return failRemote(c, err)
	}
}
