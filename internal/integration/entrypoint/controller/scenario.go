// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincast/backend/internal/application/usecase/projection"
	"github.com/fincast/backend/internal/application/usecase/scenario"
	"github.com/fincast/backend/internal/application/usecase/state"
	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/integration/entrypoint/dto"
	"github.com/fincast/backend/internal/integration/entrypoint/middleware"
)

// ScenarioController handles what-if simulation endpoints: it derives a
// branch from the current state, projects both branches over the same
// horizon and reports the deltas. Simulations never touch stored state or
// the projection cache.
type ScenarioController struct {
	getStateUseCase *state.GetStateUseCase
	branchUseCase   *scenario.BranchUseCase
	projectUseCase  *projection.ProjectUseCase
	diffUseCase     *scenario.DiffUseCase
	defaultHorizon  int
	maxHorizon      int
}

// NewScenarioController creates a new scenario controller instance.
func NewScenarioController(
	getStateUseCase *state.GetStateUseCase,
	branchUseCase *scenario.BranchUseCase,
	projectUseCase *projection.ProjectUseCase,
	diffUseCase *scenario.DiffUseCase,
	defaultHorizon, maxHorizon int,
) *ScenarioController {
	return &ScenarioController{
		getStateUseCase: getStateUseCase,
		branchUseCase:   branchUseCase,
		projectUseCase:  projectUseCase,
		diffUseCase:     diffUseCase,
		defaultHorizon:  defaultHorizon,
		maxHorizon:      maxHorizon,
	}
}

// Simulate handles POST /scenario/simulate requests.
func (c *ScenarioController) Simulate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SimulateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	horizon := req.HorizonMonths
	if horizon == 0 {
		horizon = c.defaultHorizon
	}
	if horizon < 0 || horizon > c.maxHorizon {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "horizon_months out of range",
			Code:  string(domainerror.ErrCodeNegativeHorizon),
		})
		return
	}

	baseline, err := c.getStateUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrStateNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	simulated, err := c.branchUseCase.Execute(ctx.Request.Context(), scenario.BranchInput{
		Baseline: baseline,
		Changes:  req.ToStateChanges(),
	})
	if err != nil {
		c.handleEngineError(ctx, err)
		return
	}

	baselineRun, err := c.projectUseCase.Execute(ctx.Request.Context(), projection.ProjectInput{
		State:         baseline,
		HorizonMonths: horizon,
	})
	if err != nil {
		c.handleEngineError(ctx, err)
		return
	}

	simulatedRun, err := c.projectUseCase.Execute(ctx.Request.Context(), projection.ProjectInput{
		State:         simulated,
		HorizonMonths: horizon,
	})
	if err != nil {
		c.handleEngineError(ctx, err)
		return
	}

	diff, err := c.diffUseCase.Execute(ctx.Request.Context(), scenario.DiffInput{
		Baseline:        baseline,
		Simulated:       simulated,
		BaselineSeries:  baselineRun.Series,
		SimulatedSeries: simulatedRun.Series,
	})
	if err != nil {
		c.handleEngineError(ctx, err)
		return
	}

	baseResp := dto.ToProjectionResponse(horizon, baselineRun.Series, false)
	simResp := dto.ToProjectionResponse(horizon, simulatedRun.Series, false)

	ctx.JSON(http.StatusOK, dto.SimulateResponse{
		HorizonMonths:   horizon,
		BaselineSeries:  baseResp.Series,
		SimulatedSeries: simResp.Series,
		Impact:          dto.ToImpactResponse(diff),
	})
}

// handleEngineError maps engine errors onto HTTP responses.
func (c *ScenarioController) handleEngineError(ctx *gin.Context, err error) {
	var engineErr *domainerror.EngineError
	if errors.As(err, &engineErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: engineErr.Message,
			Code:  string(engineErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
