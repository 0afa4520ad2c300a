package routes

import (
	"time"

	"consigne-admin/internal/adapters/gateway"
	"consigne-admin/internal/adapters/http/handlers"
	"consigne-admin/internal/adapters/http/middleware"
	"consigne-admin/internal/config"
	"consigne-admin/internal/core/services"
	"consigne-admin/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the console
func Setup(app *fiber.App, store *session.Store, cfg *config.Config) {
	// Gateway client to the remote lending API
	client := gateway.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	// Initialize services
	authService := services.NewAuthService(client, store, cfg)
	loanService := services.NewLoanService(client, client, client)
	stockService := services.NewStockService(client)
	userService := services.NewUserService(client)
	statsService := services.NewStatsService(client)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	loanHandler := handlers.NewLoanHandler(loanService)
	stockHandler := handlers.NewStockHandler(stockService)
	userHandler := handlers.NewUserHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Dashboard & health
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Login page (public, stricter limiter on the credential endpoint)
	app.Get("/connexion", authHandler.LoginPage)
	app.Post("/connexion/login", middleware.LoginRateLimiter(), authHandler.Login)
	app.Post("/connexion/logout", authHandler.Logout)

	// Admin pages (session-gated, redirect to /connexion for browsers)
	admin := app.Group("/admin")
	admin.Use(middleware.RequireSession(authService))

	admin.Get("/me", authHandler.Me)

	setupLoanRoutes(admin.Group("/emprunt"), loanHandler)
	setupStockRoutes(admin.Group("/stock"), stockHandler)
	setupUserRoutes(admin.Group("/user"), userHandler)
	setupStatsRoutes(admin.Group("/stats"), statsHandler)
}

// setupLoanRoutes configures the loan page routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Get("/", handler.Page)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Edit)
	router.Post("/:id/prolong", handler.Prolong)
	router.Post("/:id/retour", handler.PartialReturn)
	router.Post("/:id/terminer", handler.Terminate)
}

// setupStockRoutes configures the stock page routes
func setupStockRoutes(router fiber.Router, handler *handlers.StockHandler) {
	router.Get("/", handler.Page)
	router.Post("/", handler.Add)
	router.Delete("/:id", handler.Delete)
}

// setupUserRoutes configures the user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.Page)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Patch("/:id/delete", handler.Delete)
	router.Post("/emails", handler.Emails)
}

// setupStatsRoutes configures the reporting routes
func setupStatsRoutes(router fiber.Router, handler *handlers.StatsHandler) {
	router.Get("/", handler.Overview)
	router.Get("/charts", handler.Charts)
	router.Get("/date", handler.ByDateRange)
	router.Get("/diffuseur/:id", handler.ForDiffuser)
}
