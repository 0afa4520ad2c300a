package handlers

import (
	"errors"
	"strings"
	"time"

	"consigne-admin/internal/adapters/http/middleware"
	"consigne-admin/internal/config"
	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/core/services"
	"consigne-admin/internal/pkg/response"
	"consigne-admin/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the /connexion page
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents the login form body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPage serves the login page payload
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":          "connexion",
		"authenticated": false,
	})
}

// Login authenticates admin credentials. A non-admin account gets an
// unauthorized notice and no session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corps de requête invalide")
	}

	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "L'adresse email est requise")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Le mot de passe est requis")
	}

	result, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAdmin), errors.Is(err, domain.ErrUnauthorized):
			return response.Unauthorized(c, "Accès refusé : compte non administrateur")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Identifiants invalides")
		default:
			return failRemote(c, err)
		}
	}

	h.setSessionCookie(c, result.Token)

	return response.Success(c, "Connexion réussie", fiber.Map{
		"identity": result.Identity,
	})
}

// Logout destroys the session and clears the cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sessionToken := c.Cookies(middleware.SessionCookie); sessionToken != "" {
		h.authService.Logout(sessionToken)
	}
	h.clearSessionCookie(c)

	return response.Success(c, "Déconnexion réussie", nil)
}

// Me returns the authenticated identity
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(token.Identity)
	if !ok {
		return response.Unauthorized(c, "Non autorisé")
	}
	return response.Success(c, "Identité", fiber.Map{
		"identity": identity,
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Expires:  time.Now().Add(time.Duration(h.cfg.Session.TTLHours) * time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}
