// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/auth"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/invoice"
	"github.com/finance-tracker/ledger/internal/application/usecase/payment"
	"github.com/finance-tracker/ledger/internal/application/usecase/report"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	reportexporter "github.com/finance-tracker/ledger/internal/integration/report"
)

const redisPingTimeout = 2 * time.Second

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	memoryLimits *middleware.MemoryRateLimitStore
	cleanupEvery time.Duration
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	clock           adapter.Clock
	passwordService adapter.PasswordService
	redis           redis.UniversalClient
}

// WithClock replaces the system clock.
func WithClock(clock adapter.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithPasswordService replaces the bcrypt service, e.g. with a cheaper cost in tests.
func WithPasswordService(service adapter.PasswordService) Option {
	return func(o *options) { o.passwordService = service }
}

// WithRedis shares rate limit counters through Redis.
func WithRedis(client redis.UniversalClient) Option {
	return func(o *options) { o.redis = client }
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts ...Option) *Injector {
	o := options{
		clock:           adapters.NewSystemClock(),
		passwordService: adapters.NewPasswordService(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	refreshTokenRepo := persistence.NewRefreshTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(adapters.TokenConfig{
		Secret:          cfg.JWT.Secret,
		AccessDuration:  cfg.JWT.AccessTokenExpiry,
		RefreshDuration: cfg.JWT.RefreshTokenExpiry,
	}, refreshTokenRepo, o.clock)
	authProvider := adapters.NewAuthProvider(userRepo, o.passwordService)
	exporter := reportexporter.NewExporter()

	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, redisHealthChecker(o.redis))

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(authProvider, categoryRepo, tokenService),
		auth.NewLoginUserUseCase(authProvider, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
		auth.NewSecurityQuestionUseCase(authProvider),
		auth.NewResetPasswordUseCase(authProvider, userRepo, tokenService),
	)

	paymentController := controller.NewPaymentController(
		payment.NewListPaymentsUseCase(paymentRepo),
		payment.NewAddPaymentUseCase(paymentRepo, categoryRepo),
		payment.NewCreateInstallmentsUseCase(paymentRepo, categoryRepo, cfg.Ledger.DefaultDueDay),
		payment.NewUpdatePaymentUseCase(paymentRepo, categoryRepo),
		payment.NewDeletePaymentUseCase(paymentRepo),
		payment.NewSetPaidUseCase(paymentRepo, o.clock),
	)

	invoiceController := controller.NewInvoiceController(
		invoice.NewMarkInvoicePaidUseCase(paymentRepo, categoryRepo, o.clock, cfg.Ledger.CreditCardMarkers),
		invoice.NewUnmarkInvoicePaidUseCase(paymentRepo, categoryRepo, o.clock, cfg.Ledger.CreditCardMarkers),
	)

	budgetController := controller.NewBudgetController(
		budget.NewGetBudgetUseCase(budgetRepo),
		budget.NewUpsertBudgetUseCase(budgetRepo),
	)

	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewRenameCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
		category.NewSeedCategoriesUseCase(categoryRepo),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetMonthSummaryUseCase(paymentRepo, budgetRepo, o.clock),
		dashboard.NewGetCategoryBreakdownUseCase(paymentRepo),
		report.NewExportReportUseCase(paymentRepo, exporter),
	)

	// Create middleware
	var (
		store        middleware.RateLimitStore
		memoryLimits *middleware.MemoryRateLimitStore
	)
	if o.redis != nil {
		store = middleware.NewRedisRateLimitStore(o.redis)
	} else {
		memoryLimits = middleware.NewMemoryRateLimitStore()
		store = memoryLimits
	}
	credentialsLimiter := middleware.NewRateLimiterWithStore(store, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	if cfg.Server.Environment == "test" || cfg.Server.Environment == "e2e" {
		credentialsLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(router.Controllers{
		Health:    healthController,
		Auth:      authController,
		User:      controller.NewUserController(auth.NewGetCurrentUserUseCase(userRepo)),
		Payment:   paymentController,
		Invoice:   invoiceController,
		Budget:    budgetController,
		Category:  categoryController,
		Dashboard: dashboardController,
	}, credentialsLimiter, authMiddleware, cfg.CORS.AllowedOrigins)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		memoryLimits: memoryLimits,
		cleanupEvery: cfg.RateLimit.Window,
	}
}

// StartBackground runs housekeeping until ctx is done. Only the in-memory rate
// limit store needs it; Redis expires its keys on its own.
func (i *Injector) StartBackground(ctx context.Context) {
	if i.memoryLimits == nil {
		return
	}
	interval := i.cleanupEvery
	if interval <= 0 {
		interval = time.Minute
	}
	go i.memoryLimits.RunCleanup(ctx, interval)
}

func redisHealthChecker(client redis.UniversalClient) controller.HealthChecker {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
