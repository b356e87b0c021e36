// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fincast/backend/internal/integration/entrypoint/controller"
	"github.com/fincast/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	stateController      *controller.StateController
	projectionController *controller.ProjectionController
	riskController       *controller.RiskController
	scenarioController   *controller.ScenarioController
	advisorController    *controller.AdvisorController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	stateController *controller.StateController,
	projectionController *controller.ProjectionController,
	riskController *controller.RiskController,
	scenarioController *controller.ScenarioController,
	advisorController *controller.AdvisorController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		stateController:      stateController,
		projectionController: projectionController,
		riskController:       riskController,
		scenarioController:   scenarioController,
		advisorController:    advisorController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Financial state routes (require authentication)
		if r.stateController != nil && r.authMiddleware != nil {
			state := v1.Group("/state")
			state.Use(r.authMiddleware.Authenticate())
			{
				state.GET("", r.stateController.GetState)
				state.PUT("/profile", r.stateController.UpdateProfile)
				state.POST("/transactions", r.stateController.AddTransaction)
				state.DELETE("/transactions/:id", r.stateController.DeleteTransaction)
				state.POST("/loans", r.stateController.AddLoan)
				state.DELETE("/loans/:id", r.stateController.DeleteLoan)
				state.POST("/credit-cards", r.stateController.AddCreditCard)
				state.DELETE("/credit-cards/:id", r.stateController.DeleteCreditCard)
				state.POST("/investments", r.stateController.AddInvestment)
				state.DELETE("/investments/:id", r.stateController.DeleteInvestment)
			}
		}

		// Projection routes (require authentication)
		if r.projectionController != nil && r.authMiddleware != nil {
			projection := v1.Group("/projection")
			projection.Use(r.authMiddleware.Authenticate())
			{
				projection.GET("", r.projectionController.Project)
			}
		}

		// Risk assessment routes (require authentication)
		if r.riskController != nil && r.authMiddleware != nil {
			risk := v1.Group("/risk")
			risk.Use(r.authMiddleware.Authenticate())
			{
				risk.GET("", r.riskController.Assess)
			}
		}

		// What-if scenario routes (require authentication)
		if r.scenarioController != nil && r.authMiddleware != nil {
			scenario := v1.Group("/scenario")
			scenario.Use(r.authMiddleware.Authenticate())
			{
				scenario.POST("/simulate", r.scenarioController.Simulate)
			}
		}

		// Advisor routes (require authentication)
		if r.advisorController != nil && r.authMiddleware != nil {
			advice := v1.Group("/advisor/advice")
			advice.Use(r.authMiddleware.Authenticate())
			{
				advice.POST("", r.advisorController.Generate)
				advice.GET("", r.advisorController.List)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
