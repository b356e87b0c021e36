// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincast/backend/internal/application/usecase/risk"
	"github.com/fincast/backend/internal/application/usecase/state"
	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/integration/entrypoint/dto"
	"github.com/fincast/backend/internal/integration/entrypoint/middleware"
)

// RiskController handles risk assessment endpoints.
type RiskController struct {
	getStateUseCase *state.GetStateUseCase
	assessUseCase   *risk.AssessUseCase
}

// NewRiskController creates a new risk controller instance.
func NewRiskController(getStateUseCase *state.GetStateUseCase, assessUseCase *risk.AssessUseCase) *RiskController {
	return &RiskController{
		getStateUseCase: getStateUseCase,
		assessUseCase:   assessUseCase,
	}
}

// Assess handles GET /risk requests.
func (c *RiskController) Assess(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
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

	assessment, err := c.assessUseCase.Execute(ctx.Request.Context(), risk.AssessInput{
		UserID: userID,
		State:  snapshot,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssessmentResponse(assessment))
}
