package handler

import (
	"net/http"

	"did-payment-splitter/internal/adapter/http/middleware"
	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AdminSvc       ports.AdminService
	RegistrySvc    ports.RegistryService
	PaymentSvc     ports.PaymentService
	TokenSvc       ports.TokenAccountService
	SigSvc         ports.SignatureVerifier
	SessionSvc     ports.SessionTokenService
	NonceStore     ports.NonceStore
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Custody        domain.Principal
	Signature      middleware.SignatureOptions
	Metrics        *metrics.Metrics    // nil = no HTTP metrics
	Gatherer       prometheus.Gatherer // nil = /metrics not served
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	// Health check (pings every configured backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	sigAuth := middleware.SignatureAuth(deps.SigSvc, deps.NonceStore, deps.Signature, deps.Logger)
	jwtAuth := middleware.JWTAuth(deps.SessionSvc, deps.Logger)
	auth := middleware.Authenticate(sigAuth, jwtAuth)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Sessions (signature only) ---
	authHandler := NewAuthHandler(deps.SessionSvc)
	v1.POST("/auth/token", sigAuth, rl("auth"), authHandler.IssueToken)

	// --- Identities ---
	identityHandler := NewIdentityHandler(deps.RegistrySvc)
	identities := v1.Group("/identities")
	{
		identities.POST("", auth, rl("identities"), identityHandler.Create)
		identities.GET("/:did/controller", rl("reads"), identityHandler.Resolve)
		identities.DELETE("/:did", auth, rl("identities"), identityHandler.Delete)
		identities.PUT("/:did/metadata", auth, rl("identities"), identityHandler.SetMetadata)
	}

	// --- Admin gate ---
	adminHandler := NewAdminHandler(deps.AdminSvc)
	admin := v1.Group("/admin")
	{
		admin.GET("/owner", rl("reads"), adminHandler.Owner)
		admin.PUT("/owner", auth, rl("admin"), adminHandler.TransferOwnership)
		admin.GET("/whitelist/:principal", rl("reads"), adminHandler.IsWhitelisted)
		admin.POST("/whitelist", auth, rl("admin"), adminHandler.AddWhitelisted)
		admin.DELETE("/whitelist/:principal", auth, rl("admin"), adminHandler.RemoveWhitelisted)
	}

	// --- Registry ---
	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	for path, role := range map[string]domain.Role{
		"/vendors":    domain.RoleVendor,
		"/affiliates": domain.RoleAffiliate,
	} {
		g := v1.Group(path)
		g.POST("", auth, rl("registry"), registryHandler.Register(role))
		g.GET("/:did", rl("reads"), registryHandler.Status(role))
		g.DELETE("/:did", auth, rl("registry"), registryHandler.Remove(role))
	}

	links := v1.Group("/affiliate-links")
	{
		links.GET("/:did", rl("reads"), registryHandler.GetLink)
		links.PUT("/:did", auth, rl("registry"), registryHandler.SetLink)
		links.DELETE("/:did", auth, rl("registry"), registryHandler.RemoveLink)
	}

	// --- Payments ---
	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.Custody)
	payments := v1.Group("/payments")
	{
		payments.POST("", auth, rl("payments"), paymentHandler.MakePayment)
		payments.GET("/custody", rl("reads"), paymentHandler.Custody)
	}

	// --- Value token ---
	tokenHandler := NewTokenHandler(deps.TokenSvc)
	tokens := v1.Group("/tokens/:token")
	{
		tokens.POST("/approve", auth, rl("tokens"), tokenHandler.Approve)
		tokens.POST("/mint", auth, rl("tokens"), tokenHandler.Mint)
		tokens.GET("/balances/:owner", rl("reads"), tokenHandler.Balance)
		tokens.GET("/allowances/:owner/:spender", rl("reads"), tokenHandler.Allowance)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error_code": "SYS_404", "message": "Route not found"})
	})

	return r
}
