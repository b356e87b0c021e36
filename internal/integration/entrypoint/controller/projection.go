// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/application/usecase/projection"
	"github.com/fincast/backend/internal/application/usecase/state"
	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/integration/entrypoint/dto"
	"github.com/fincast/backend/internal/integration/entrypoint/middleware"
)

// ProjectionController handles projection endpoints. Computed series are
// cached per user and horizon; the cache is best-effort and a failing
// backend never fails the request.
type ProjectionController struct {
	getStateUseCase *state.GetStateUseCase
	projectUseCase  *projection.ProjectUseCase
	cache           adapter.ProjectionCache
	cacheTTL        time.Duration
	defaultHorizon  int
	maxHorizon      int
}

// NewProjectionController creates a new projection controller instance.
func NewProjectionController(
	getStateUseCase *state.GetStateUseCase,
	projectUseCase *projection.ProjectUseCase,
	cache adapter.ProjectionCache,
	cacheTTL time.Duration,
	defaultHorizon, maxHorizon int,
) *ProjectionController {
	return &ProjectionController{
		getStateUseCase: getStateUseCase,
		projectUseCase:  projectUseCase,
		cache:           cache,
		cacheTTL:        cacheTTL,
		defaultHorizon:  defaultHorizon,
		maxHorizon:      maxHorizon,
	}
}

// Project handles GET /projection requests.
func (c *ProjectionController) Project(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	horizon := c.defaultHorizon
	if raw := ctx.Query("horizon_months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "horizon_months must be an integer",
			})
			return
		}
		horizon = parsed
	}

	if horizon < 0 || horizon > c.maxHorizon {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "horizon_months out of range",
			Code:  string(domainerror.ErrCodeNegativeHorizon),
		})
		return
	}

	if c.cache != nil {
		series, hit, err := c.cache.Get(ctx.Request.Context(), userID, horizon)
		if err != nil {
			slog.Warn("projection cache read failed", "error", err, "user_id", userID)
		} else if hit {
			ctx.JSON(http.StatusOK, dto.ToProjectionResponse(horizon, series, true))
			return
		}
	}

	snapshot, err := c.getStateUseCase.Execute(ctx.Request.Context(), userID)
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

	output, err := c.projectUseCase.Execute(ctx.Request.Context(), projection.ProjectInput{
		State:         snapshot,
		HorizonMonths: horizon,
	})
	if err != nil {
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
		return
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx.Request.Context(), userID, horizon, output.Series, c.cacheTTL); err != nil {
			slog.Warn("projection cache write failed", "error", err, "user_id", userID)
		}
	}

	ctx.JSON(http.StatusOK, dto.ToProjectionResponse(horizon, output.Series, false))
}
