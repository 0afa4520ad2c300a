package handlers

import (
	"errors"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// failRemote maps the generic remote-API failure classes to transient page
// notices. Handlers deal with their endpoint-specific errors first and fall
// back here.
func failRemote(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnreachable):
		return response.BadGateway(c, "Impossible de joindre le serveur")
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Aucune donnée trouvée")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, "Requête invalide")
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, "Non autorisé")
	default:
		return response.InternalServerError(c, "Erreur interne, réessayez plus tard")
	}
}
