// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fincast/backend/config"
	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/application/usecase/advisor"
	"github.com/fincast/backend/internal/application/usecase/auth"
	"github.com/fincast/backend/internal/application/usecase/projection"
	"github.com/fincast/backend/internal/application/usecase/risk"
	"github.com/fincast/backend/internal/application/usecase/scenario"
	"github.com/fincast/backend/internal/application/usecase/state"
	"github.com/fincast/backend/internal/infra/server/router"
	"github.com/fincast/backend/internal/integration/adapters"
	"github.com/fincast/backend/internal/integration/cache"
	"github.com/fincast/backend/internal/integration/email"
	"github.com/fincast/backend/internal/integration/entrypoint/controller"
	"github.com/fincast/backend/internal/integration/entrypoint/middleware"
	"github.com/fincast/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client is optional: without it projections simply run uncached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	stateRepo := persistence.NewStateRepository(db)
	adviceRepo := persistence.NewAdviceRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	adviceService := adapters.NewGeminiService(cfg.Advisor.GeminiAPIKey)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	var projectionCache adapter.ProjectionCache
	if redisClient != nil {
		projectionCache = cache.NewProjectionCache(redisClient)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create state use cases
	getStateUseCase := state.NewGetStateUseCase(stateRepo)
	updateProfileUseCase := state.NewUpdateProfileUseCase(stateRepo, projectionCache)
	addTransactionUseCase := state.NewAddTransactionUseCase(stateRepo, projectionCache)
	deleteTransactionUseCase := state.NewDeleteTransactionUseCase(stateRepo, projectionCache)
	addLoanUseCase := state.NewAddLoanUseCase(stateRepo, projectionCache)
	deleteLoanUseCase := state.NewDeleteLoanUseCase(stateRepo, projectionCache)
	addCreditCardUseCase := state.NewAddCreditCardUseCase(stateRepo, projectionCache)
	deleteCreditCardUseCase := state.NewDeleteCreditCardUseCase(stateRepo, projectionCache)
	addInvestmentUseCase := state.NewAddInvestmentUseCase(stateRepo, projectionCache)
	deleteInvestmentUseCase := state.NewDeleteInvestmentUseCase(stateRepo, projectionCache)

	// Create engine use cases
	projectUseCase := projection.NewProjectUseCase()
	assessUseCase := risk.NewAssessUseCase(userRepo, emailSender)
	branchUseCase := scenario.NewBranchUseCase()
	diffUseCase := scenario.NewDiffUseCase()

	// Create advisor use cases
	generateAdviceUseCase := advisor.NewGenerateAdviceUseCase(adviceService, adviceRepo)
	listAdviceUseCase := advisor.NewListAdviceUseCase(adviceRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	stateController := controller.NewStateController(
		getStateUseCase,
		updateProfileUseCase,
		addTransactionUseCase,
		deleteTransactionUseCase,
		addLoanUseCase,
		deleteLoanUseCase,
		addCreditCardUseCase,
		deleteCreditCardUseCase,
		addInvestmentUseCase,
		deleteInvestmentUseCase,
	)

	projectionController := controller.NewProjectionController(
		getStateUseCase,
		projectUseCase,
		projectionCache,
		cfg.Engine.ProjectionCacheTTL,
		cfg.Engine.DefaultHorizonMonths,
		cfg.Engine.MaxHorizonMonths,
	)

	riskController := controller.NewRiskController(getStateUseCase, assessUseCase)

	scenarioController := controller.NewScenarioController(
		getStateUseCase,
		branchUseCase,
		projectUseCase,
		diffUseCase,
		cfg.Engine.DefaultHorizonMonths,
		cfg.Engine.MaxHorizonMonths,
	)

	advisorController := controller.NewAdvisorController(
		getStateUseCase,
		branchUseCase,
		generateAdviceUseCase,
		listAdviceUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		stateController,
		projectionController,
		riskController,
		scenarioController,
		advisorController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
