package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"did-payment-splitter/config"
	httpHandler "did-payment-splitter/internal/adapter/http/handler"
	"did-payment-splitter/internal/adapter/http/middleware"
	"did-payment-splitter/internal/adapter/storage/memory"
	pgStorage "did-payment-splitter/internal/adapter/storage/postgres"
	redisStorage "did-payment-splitter/internal/adapter/storage/redis"
	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/internal/service"
	"did-payment-splitter/pkg/logger"
	"did-payment-splitter/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// backend groups the storage-specific ports the services run on.
type backend struct {
	ledger     ports.IdentityLedger
	token      ports.ValueToken
	registry   ports.RegistryRepository
	admin      ports.AdminRepository
	transactor ports.Transactor
	sinks      []ports.EventSink
	health     []ports.HealthChecker
	close      func()
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("backend", cfg.Storage.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting DID Payment Splitter")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("DPS_JWT_SECRET must be set")
	}
	custody, err := domain.ParsePrincipal(cfg.Splitter.Custody)
	if err != nil || custody == domain.NoPrincipal {
		log.Fatal().Str("custody", cfg.Splitter.Custody).Msg("DPS_SPLITTER_CUSTODY must be a non-zero address")
	}

	ctx := context.Background()

	// Initialize storage
	var store backend
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		log.Info().Msg("PostgreSQL connected")
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}
		store = backend{
			ledger:     pgStorage.NewLedgerRepo(pool),
			token:      pgStorage.NewTokenRepo(pool),
			registry:   pgStorage.NewRegistryRepo(pool),
			admin:      pgStorage.NewAdminRepo(pool),
			transactor: pgStorage.NewTransactor(pool, log),
			sinks:      []ports.EventSink{pgStorage.NewEventRepo(pool)},
			health:     []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
			close:      pool.Close,
		}
	default:
		log.Warn().Msg("Using in-memory storage, state is lost on restart")
		store = backend{
			ledger:     memory.NewLedger(),
			token:      memory.NewToken(),
			registry:   memory.NewRegistryRepository(),
			admin:      memory.NewAdminRepository(),
			transactor: memory.NewTransactor(),
			close:      func() {},
		}
	}
	defer store.close()

	// Initialize Redis stores. Without Redis, nonces stay in process and
	// rate limiting is off.
	var (
		nonceStore     ports.NonceStore = memory.NewNonceStore()
		rateLimitStore ports.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		nonceStore = redisStorage.NewNonceStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		store.sinks = append(store.sinks, redisStorage.NewEventStream(rdb, cfg.Redis.EventsKey))
		store.health = append(store.health, redisStorage.NewHealthCheck(rdb, cfg.Redis.EventsKey))
	}

	// Initialize metrics
	var (
		m   *metrics.Metrics
		reg *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	// Initialize core services
	events := service.NewEventService(log, m, store.sinks...)
	adminSvc := service.NewAdminService(store.admin, store.transactor, events, m, log)
	registrySvc := service.NewRegistryService(store.registry, store.ledger, adminSvc, store.transactor, events, m, log)
	paymentSvc := service.NewPaymentService(store.registry, store.ledger, store.token, store.transactor, events, custody, m, log)
	tokenSvc := service.NewTokenAccountService(store.token, adminSvc, store.transactor, log)
	sigSvc := service.NewEthSignatureService()
	sessionSvc := service.NewJWTSessionService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Seed the owning admin
	if cfg.Admin.Owner != "" {
		owner, err := domain.ParsePrincipal(cfg.Admin.Owner)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid DPS_ADMIN_OWNER")
		}
		if err := adminSvc.Bootstrap(ctx, owner); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap owner")
		}
	} else if current, err := adminSvc.Owner(ctx); err != nil || current == domain.NoPrincipal {
		log.Warn().Msg("No owner configured, admin operations are unavailable")
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	deps := httpHandler.RouterDeps{
		AdminSvc:       adminSvc,
		RegistrySvc:    registrySvc,
		PaymentSvc:     paymentSvc,
		TokenSvc:       tokenSvc,
		SigSvc:         sigSvc,
		SessionSvc:     sessionSvc,
		NonceStore:     nonceStore,
		RateLimitStore: rateLimitStore,
		HealthCheckers: store.health,
		Custody:        custody,
		Signature: middleware.SignatureOptions{
			MaxClockSkew: cfg.Auth.MaxClockSkew,
			NonceTTL:     cfg.Auth.NonceTTL,
		},
		Metrics: m,
		Mode:    cfg.Server.Mode,
		Logger:  log,
	}
	if reg != nil {
		deps.Gatherer = reg
	}
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Str("custody", custody.Hex()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
