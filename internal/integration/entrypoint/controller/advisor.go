// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fincast/backend/internal/application/usecase/advisor"
	"github.com/fincast/backend/internal/application/usecase/scenario"
	"github.com/fincast/backend/internal/application/usecase/state"
	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/integration/entrypoint/dto"
	"github.com/fincast/backend/internal/integration/entrypoint/middleware"
)

// AdvisorController handles advice generation endpoints.
type AdvisorController struct {
	getStateUseCase       *state.GetStateUseCase
	branchUseCase         *scenario.BranchUseCase
	generateAdviceUseCase *advisor.GenerateAdviceUseCase
	listAdviceUseCase     *advisor.ListAdviceUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(
	getStateUseCase *state.GetStateUseCase,
	branchUseCase *scenario.BranchUseCase,
	generateAdviceUseCase *advisor.GenerateAdviceUseCase,
	listAdviceUseCase *advisor.ListAdviceUseCase,
) *AdvisorController {
	return &AdvisorController{
		getStateUseCase:       getStateUseCase,
		branchUseCase:         branchUseCase,
		generateAdviceUseCase: generateAdviceUseCase,
		listAdviceUseCase:     listAdviceUseCase,
	}
}

// Generate handles POST /advisor/advice requests.
func (c *AdvisorController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
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

	var simulated *entity.FinancialState
	if req.Simulation != nil {
		simulated, err = c.branchUseCase.Execute(ctx.Request.Context(), scenario.BranchInput{
			Baseline: snapshot,
			Changes:  req.Simulation.ToStateChanges(),
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
	}

	output, err := c.generateAdviceUseCase.Execute(ctx.Request.Context(), advisor.GenerateAdviceInput{
		UserID:    userID,
		Question:  req.Question,
		State:     snapshot,
		Simulated: simulated,
	})
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdviceResponse(output.Advice))
}

// List handles GET /advisor/advice requests.
func (c *AdvisorController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	advice, err := c.listAdviceUseCase.Execute(ctx.Request.Context(), userID, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	response := dto.AdviceListResponse{Advice: make([]dto.AdviceResponse, 0, len(advice))}
	for _, a := range advice {
		response.Advice = append(response.Advice, dto.ToAdviceResponse(a))
	}

	ctx.JSON(http.StatusOK, response)
}

// handleAdvisorError maps advisor errors onto HTTP responses.
func (c *AdvisorController) handleAdvisorError(ctx *gin.Context, err error) {
	var advisorErr *domainerror.AdvisorError
	if errors.As(err, &advisorErr) {
		statusCode := http.StatusBadGateway
		switch advisorErr.Code {
		case domainerror.ErrCodeEmptyQuestion:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeAdvisorUnavailable:
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: advisorErr.Message,
			Code:  string(advisorErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
