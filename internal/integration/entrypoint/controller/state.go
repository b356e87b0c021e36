// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/usecase/state"
	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/integration/entrypoint/dto"
	"github.com/fincast/backend/internal/integration/entrypoint/middleware"
)

// StateController handles financial state endpoints.
type StateController struct {
	getStateUseCase         *state.GetStateUseCase
	updateProfileUseCase    *state.UpdateProfileUseCase
	addTransactionUseCase   *state.AddTransactionUseCase
	deleteTransactionUC     *state.DeleteTransactionUseCase
	addLoanUseCase          *state.AddLoanUseCase
	deleteLoanUseCase       *state.DeleteLoanUseCase
	addCreditCardUseCase    *state.AddCreditCardUseCase
	deleteCreditCardUseCase *state.DeleteCreditCardUseCase
	addInvestmentUseCase    *state.AddInvestmentUseCase
	deleteInvestmentUseCase *state.DeleteInvestmentUseCase
}

// NewStateController creates a new state controller instance.
func NewStateController(
	getStateUseCase *state.GetStateUseCase,
	updateProfileUseCase *state.UpdateProfileUseCase,
	addTransactionUseCase *state.AddTransactionUseCase,
	deleteTransactionUC *state.DeleteTransactionUseCase,
	addLoanUseCase *state.AddLoanUseCase,
	deleteLoanUseCase *state.DeleteLoanUseCase,
	addCreditCardUseCase *state.AddCreditCardUseCase,
	deleteCreditCardUseCase *state.DeleteCreditCardUseCase,
	addInvestmentUseCase *state.AddInvestmentUseCase,
	deleteInvestmentUseCase *state.DeleteInvestmentUseCase,
) *StateController {
	return &StateController{
		getStateUseCase:         getStateUseCase,
		updateProfileUseCase:    updateProfileUseCase,
		addTransactionUseCase:   addTransactionUseCase,
		deleteTransactionUC:     deleteTransactionUC,
		addLoanUseCase:          addLoanUseCase,
		deleteLoanUseCase:       deleteLoanUseCase,
		addCreditCardUseCase:    addCreditCardUseCase,
		deleteCreditCardUseCase: deleteCreditCardUseCase,
		addInvestmentUseCase:    addInvestmentUseCase,
		deleteInvestmentUseCase: deleteInvestmentUseCase,
	}
}

// GetState handles GET /state requests.
func (c *StateController) GetState(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	snapshot, err := c.getStateUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleStateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStateResponse(snapshot))
}

// UpdateProfile handles PUT /state/profile requests.
func (c *StateController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := state.UpdateProfileInput{
		UserID:        userID,
		CashBalance:   decimal.NewFromFloat(req.CashBalance),
		MonthlyIncome: decimal.NewFromFloat(req.MonthlyIncome),
	}

	if err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleStateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile updated"})
}

// AddTransaction handles POST /state/transactions requests.
func (c *StateController) AddTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := state.AddTransactionInput{
		UserID:      userID,
		Date:        date,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Type:        entity.TransactionType(req.Type),
	}

	transaction, err := c.addTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// DeleteTransaction handles DELETE /state/transactions/:id requests.
func (c *StateController) DeleteTransaction(ctx *gin.Context) {
	c.deleteEntry(ctx, func(reqCtx *gin.Context, userID, entryID uuid.UUID) error {
		return c.deleteTransactionUC.Execute(reqCtx.Request.Context(), userID, entryID)
	})
}

// AddLoan handles POST /state/loans requests.
func (c *StateController) AddLoan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := state.AddLoanInput{
		UserID:       userID,
		Name:         req.Name,
		Principal:    decimal.NewFromFloat(req.Principal),
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
	}

	loan, err := c.addLoanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// DeleteLoan handles DELETE /state/loans/:id requests.
func (c *StateController) DeleteLoan(ctx *gin.Context) {
	c.deleteEntry(ctx, func(reqCtx *gin.Context, userID, entryID uuid.UUID) error {
		return c.deleteLoanUseCase.Execute(reqCtx.Request.Context(), userID, entryID)
	})
}

// AddCreditCard handles POST /state/credit-cards requests.
func (c *StateController) AddCreditCard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := state.AddCreditCardInput{
		UserID:       userID,
		Name:         req.Name,
		CashbackRate: req.CashbackRate,
		AnnualFee:    decimal.NewFromFloat(req.AnnualFee),
		InterestRate: req.InterestRate,
	}

	card, err := c.addCreditCardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(card))
}

// DeleteCreditCard handles DELETE /state/credit-cards/:id requests.
func (c *StateController) DeleteCreditCard(ctx *gin.Context) {
	c.deleteEntry(ctx, func(reqCtx *gin.Context, userID, entryID uuid.UUID) error {
		return c.deleteCreditCardUseCase.Execute(reqCtx.Request.Context(), userID, entryID)
	})
}

// AddInvestment handles POST /state/investments requests.
func (c *StateController) AddInvestment(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := state.AddInvestmentInput{
		UserID:              userID,
		Name:                req.Name,
		Balance:             decimal.NewFromFloat(req.Balance),
		AnnualReturnRate:    req.AnnualReturnRate,
		MonthlyContribution: decimal.NewFromFloat(req.MonthlyContribution),
		RiskTier:            entity.InvestmentRiskTier(req.RiskTier),
	}

	investment, err := c.addInvestmentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// DeleteInvestment handles DELETE /state/investments/:id requests.
func (c *StateController) DeleteInvestment(ctx *gin.Context) {
	c.deleteEntry(ctx, func(reqCtx *gin.Context, userID, entryID uuid.UUID) error {
		return c.deleteInvestmentUseCase.Execute(reqCtx.Request.Context(), userID, entryID)
	})
}

// deleteEntry factors the shared id-parsing and error handling of the
// DELETE handlers.
func (c *StateController) deleteEntry(ctx *gin.Context, remove func(*gin.Context, uuid.UUID, uuid.UUID) error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID",
		})
		return
	}

	if err := remove(ctx, userID, entryID); err != nil {
		c.handleStateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Entry deleted"})
}

// handleStateError handles state errors and returns appropriate HTTP responses.
func (c *StateController) handleStateError(ctx *gin.Context, err error) {
	var stateErr *domainerror.StateError
	if errors.As(err, &stateErr) {
		ctx.JSON(c.getStatusCodeForStateError(stateErr.Code), dto.ErrorResponse{
			Error: stateErr.Message,
			Code:  string(stateErr.Code),
		})
		return
	}

	var engineErr *domainerror.EngineError
	if errors.As(err, &engineErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: engineErr.Message,
			Code:  string(engineErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrStateNotFound), errors.Is(err, domainerror.ErrEntryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrInvalidTransactionType),
		errors.Is(err, domainerror.ErrInvalidAmount),
		errors.Is(err, domainerror.ErrInvalidRiskTier):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// getStatusCodeForStateError maps state error codes to HTTP status codes.
func (c *StateController) getStatusCodeForStateError(code domainerror.StateErrorCode) int {
	switch code {
	case domainerror.ErrCodeStateNotFound, domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidRiskTier:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondInvalidBody writes the shared malformed-body response.
func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
	})
}
