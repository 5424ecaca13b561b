package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "sqv_cleaning/docs"
	"sqv_cleaning/internal/adapter/http/handlers"
	"sqv_cleaning/internal/adapter/http/middleware"
	"sqv_cleaning/internal/adapter/persistence/repository"
	"sqv_cleaning/internal/config"
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/infrastructure/cache"
	"sqv_cleaning/internal/infrastructure/database"
	"sqv_cleaning/internal/infrastructure/schedule"
	"sqv_cleaning/internal/observability/metrics"
	"sqv_cleaning/internal/usecase"
	"sqv_cleaning/internal/usecase/interfaces"
	"sqv_cleaning/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const redisKeyPrefix = "sqv:"

// Run will start the server
func Run() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := NewRouter(ctx, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("failed to startup the application", "error", err)
		os.Exit(1)
	}

	srv := NewServer(cfg, router)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "handoff_store", cfg.HandoffStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// NewServer wraps the router with CORS for the configured page origins.
// Credentials are allowed so the session cookie reaches the API.
func NewServer(cfg *config.Config, router http.Handler) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// NewRouter wires stores, use cases and handlers from cfg. Metrics are
// registered on reg and served on /metrics.
func NewRouter(ctx context.Context, cfg *config.Config, logger *logging.Logger, reg *prometheus.Registry) (*gin.Engine, error) {
	catalogRepo, err := repository.NewCatalogRepository(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	store, err := buildHandoffStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	slots, err := schedule.NewHourlySlotProvider(cfg)
	if err != nil {
		return nil, err
	}

	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewEstimateMetrics(reg)

	estimateUseCase := usecase.NewEstimateUseCase(catalogRepo, store, cfg.HandoffTTL, entities.ParseBreakdownOrder(cfg.EstimateBreakdownOrder), m, logger)
	scheduleUseCase := usecase.NewScheduleUseCase(estimateUseCase, catalogRepo, slots, entities.ParseBreakdownOrder(cfg.ScheduleBreakdownOrder), m, logger)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase, logger)

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	v1.Use(middleware.Session(cfg.SessionCookie, cfg.SessionCookieSecure))
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler)
	addScheduleRoutes(v1, scheduleHandler)

	return router, nil
}

func buildHandoffStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) (interfaces.IHandoffStore, error) {
	switch cfg.HandoffStore {
	case config.HandoffStoreRedis:
		client := cache.BuildRedisClient(ctx, cfg, logger, true)
		if client == nil {
			return nil, fmt.Errorf("redis hand-off store unavailable at %q", cfg.RedisAddr)
		}
		return repository.NewHandoffRedisStore(client, redisKeyPrefix), nil
	case config.HandoffStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewHandoffDynamoStore(ddb, cfg.HandoffTable), nil
	case config.HandoffStoreMemory, "":
		return repository.NewHandoffMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown hand-off store %q", cfg.HandoffStore)
	}
}

func setMiddlewares(router *gin.Engine, logger *logging.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
