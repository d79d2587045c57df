package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "marketplace_payments/docs"
	"marketplace_payments/internal/adapter/http/handlers"
	"marketplace_payments/internal/adapter/http/middleware"
	"marketplace_payments/internal/config"
	"marketplace_payments/internal/infrastructure/scheduler"
	"marketplace_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server owns the HTTP listener and every long-lived client behind it.
type Server struct {
	http       *http.Server
	reconciler *scheduler.Reconciler
	closers    []func()
}

// UseCases are the application services exposed over HTTP.
type UseCases struct {
	Checkout       usecase.ICheckoutUseCase
	PaymentEvents  usecase.IPaymentEventUseCase
	Conversations  usecase.IConversationUseCase
	Messaging      usecase.IMessagingUseCase
	Reconciliation usecase.IReconciliationUseCase
}

// NewServer builds the ledger, the payment provider and the optional event
// infrastructure once, and injects them into the use cases.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
			Handler:           NewRouter(cfg, deps.useCases),
			ReadHeaderTimeout: 10 * time.Second,
		},
		reconciler: scheduler.NewReconciler(deps.useCases.Reconciliation, cfg.ReconcileSchedule),
		closers:    deps.closers,
	}
	return srv, nil
}

// NewRouter registers every route on a fresh engine.
func NewRouter(cfg *config.Config, uc UseCases) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	// Processor retries are not throttled.
	addWebhookRoutes(v1, handlers.NewWebhookHandler(uc.PaymentEvents))

	limited := v1.Group("")
	if cfg.RateLimit > 0 {
		limited.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst).Handler())
	}
	addCheckoutRoutes(limited, handlers.NewCheckoutHandler(uc.Checkout))
	addChatRoutes(limited, handlers.NewChatHandler(uc.Conversations, uc.Messaging))
	addAdminRoutes(v1, cfg.AdminAPIKey, handlers.NewReconcileHandler(uc.Reconciliation))

	return router
}

// Run starts the reconciliation schedule and serves until the listener stops.
func (s *Server) Run() error {
	if err := s.reconciler.Start(); err != nil {
		return err
	}
	log.Printf("[http][server] listening addr=%s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)

	select {
	case <-s.reconciler.Stop().Done():
	case <-ctx.Done():
		log.Printf("[http][server] reconciler did not stop before deadline")
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	log.Printf("[http][server] stopped")
	return err
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
