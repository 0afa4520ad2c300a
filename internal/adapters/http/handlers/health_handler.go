package handlers

import (
	"consigne-admin/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles the dashboard root and health endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root serves the dashboard payload: the console pages and where to log in
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "Console d'administration Consigne",
		"mode":    config.AppConfig.AppMode,
		"pages": fiber.Map{
			"connexion": "/connexion",
			"emprunts":  "/admin/emprunt",
			"stock":     "/admin/stock",
			"comptes":   "/admin/user",
			"stats":     "/admin/stats",
		},
	})
}

// HealthCheck reports console and session store health
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	storeStatus := "healthy"
	if err := config.HealthCheck(); err != nil {
		storeStatus = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"console":       "healthy",
			"session_store": storeStatus,
		},
	})
}
