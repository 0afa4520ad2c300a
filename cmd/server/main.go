package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"consigne-admin/internal/adapters/http/middleware"
	"consigne-admin/internal/adapters/http/routes"
	"consigne-admin/internal/config"
	"consigne-admin/internal/core/services"
	"consigne-admin/internal/session"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open the session store (the only local persistence; all lending data
	// stays on the remote API)
	db, err := config.ConnectSessionDB(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to open session store: %v", err)
	}
	defer config.CloseSessionDB()

	store, err := session.NewStore(db)
	if err != nil {
		log.Fatalf("❌ Failed to migrate session store: %v", err)
	}

	// Start the expired-session sweep
	sweepService := services.NewSweepService(store)
	sweepService.Start()
	defer sweepService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Consigne Admin Console",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Console starting on port %s [MODE: %s] [API: %s]", cfg.Port, cfg.AppMode, cfg.API.BaseURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start console: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down console...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Console stopped gracefully")
}
