package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "marketplace_payments/docs"
	"marketplace_payments/internal/adapter/http/routes"
	"marketplace_payments/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Marketplace Payments API
// @version         1.0
// @description     Checkout, payment webhooks and mission conversations backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Operator key for reconciliation endpoints.

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := routes.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server stopped with error: %v", err)
		}
	case <-ctx.Done():
		log.Printf("[http][server] shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http][server] graceful shutdown failed err=%v", err)
	}
}
