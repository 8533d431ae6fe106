// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health    *controller.HealthController
	Auth      *controller.AuthController
	User      *controller.UserController
	Payment   *controller.PaymentController
	Invoice   *controller.InvoiceController
	Budget    *controller.BudgetController
	Category  *controller.CategoryController
	Dashboard *controller.DashboardController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	controllers        Controllers
	credentialsLimiter *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
	allowedOrigins     []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	credentialsLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		controllers:        controllers,
		credentialsLimiter: credentialsLimiter,
		authMiddleware:     authMiddleware,
		allowedOrigins:     allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
	r.engine.GET("/api/v1/health", r.controllers.Health.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	c := r.controllers

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", r.credentialsLimiter.Middleware(), c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)
		auth.GET("/security-question", c.Auth.SecurityQuestion)
		auth.POST("/reset-password", r.credentialsLimiter.Middleware(), c.Auth.ResetPassword)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	protected.GET("/users/me", c.User.Me)

	payments := protected.Group("/payments")
	{
		payments.GET("", c.Payment.List)
		payments.POST("", c.Payment.Create)
		payments.POST("/installments", c.Payment.CreateInstallments)
		payments.PUT("/:id", c.Payment.Update)
		payments.DELETE("/:id", c.Payment.Delete)
		payments.PATCH("/:id/paid", c.Payment.SetPaid)
	}

	invoices := protected.Group("/credit-invoices")
	{
		invoices.POST("/pay", c.Invoice.Pay)
		invoices.POST("/unpay", c.Invoice.Unpay)
	}

	budgets := protected.Group("/budgets")
	{
		budgets.GET("", c.Budget.Get)
		budgets.PUT("", c.Budget.Upsert)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", c.Category.List)
		categories.POST("", c.Category.Create)
		categories.POST("/seed", c.Category.Seed)
		categories.PATCH("/:id", c.Category.Rename)
		categories.DELETE("/:id", c.Category.Delete)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/summary", c.Dashboard.Summary)
		reports.GET("/categories", c.Dashboard.CategoryBreakdown)
		reports.GET("/export", c.Dashboard.Export)
	}
}
