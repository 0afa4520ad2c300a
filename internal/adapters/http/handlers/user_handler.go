package handlers

import (
	"strconv"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/core/services"
	"consigne-admin/internal/core/view"
	"consigne-admin/internal/pkg/pagination"
	"consigne-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles the /admin/user page
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Page serves the account list view. Search, exact role filter, sort and
// window travel in the query string.
func (h *UserHandler) Page(c *fiber.Ctx) error {
	accounts, err := h.userService.List(c.Context())
	if err != nil {
		return failRemote(c, err)
	}

	accountView := view.ApplyAccountQuery(accounts, accountQueryFromRequest(c))

	return response.Success(c, "Comptes récupérés", fiber.Map{
		"view": accountView,
	})
}

func accountQueryFromRequest(c *fiber.Ctx) view.AccountQuery {
	q := view.AccountQuery{
		Search:   c.Query("q"),
		SortKey:  view.AccountSortKey(c.Query("sort", string(view.AccountSortByID))),
		SortDesc: c.QueryBool("desc"),
		Window:   pagination.GetParams(c),
	}

	if raw := c.Query("role"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			role := domain.Role(value)
			q.Role = &role
		}
	}
	return q
}

// Create adds an account
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var account domain.Account
	if err := c.BodyParser(&account); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}

	accounts, err := h.userService.Create(c.Context(), account)
	if err != nil {
		return failRemote(c, err)
	}

	return response.Created(c, "Compte créé", fiber.Map{"accounts": accounts})
}

// Update overwrites an account's details
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant de compte invalide")
	}

	var account domain.Account
	if err := c.BodyParser(&account); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}
	account.ID = uint(id)

	accounts, err := h.userService.Update(c.Context(), account)
	if err != nil {
		return failRemote(c, err)
	}

	return response.Success(c, "Compte modifié", fiber.Map{"accounts": accounts})
}

// Delete soft-deletes an account (status flag flip, the row remains)
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Identifiant de compte invalide")
	}

	accounts, err := h.userService.SoftDelete(c.Context(), uint(id))
	if err != nil {
		return failRemote(c, err)
	}

	return response.Success(c, "Compte supprimé", fiber.Map{"accounts": accounts})
}

// EmailsRequest carries the multi-selected account ids
type EmailsRequest struct {
	Selected []uint `json:"selected"`
}

// Emails returns the joined email list of the selected accounts, ready for
// the clipboard
func (h *UserHandler) Emails(c *fiber.Ctx) error {
	var req EmailsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}

	emails, err := h.userService.Emails(c.Context(), req.Selected)
	if err != nil {
		return failRemote(c, err)
	}

	return response.Success(c, "Emails sélectionnés", fiber.Map{"emails": emails})
}
