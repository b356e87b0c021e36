// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/integration/persistence/model"
)

// stateRepository implements the adapter.StateRepository interface. It keeps
// the snapshot split across five tables (profile, transactions, loans, cards,
// investments) and materializes a full FinancialState on read.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new state repository instance.
func NewStateRepository(db *gorm.DB) adapter.StateRepository {
	return &stateRepository{
		db: db,
	}
}

// GetState assembles the full financial state snapshot for a user.
func (r *stateRepository) GetState(ctx context.Context, userID uuid.UUID) (*entity.FinancialState, error) {
	var profile model.FinancialProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStateNotFound
		}
		return nil, result.Error
	}

	state := entity.NewFinancialState(profile.CashBalance, profile.MonthlyIncome)

	var transactions []model.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	for i := range transactions {
		state.Transactions = append(state.Transactions, transactions[i].ToEntity())
	}

	var loans []model.LoanModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&loans).Error; err != nil {
		return nil, err
	}
	for i := range loans {
		state.Loans = append(state.Loans, loans[i].ToEntity())
	}

	var cards []model.CreditCardModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	for i := range cards {
		state.CreditCards = append(state.CreditCards, cards[i].ToEntity())
	}

	var investments []model.InvestmentModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&investments).Error; err != nil {
		return nil, err
	}
	for i := range investments {
		state.Investments = append(state.Investments, investments[i].ToEntity())
	}

	return state, nil
}

// SaveProfile creates or updates the user's cash balance and fallback monthly income.
func (r *stateRepository) SaveProfile(ctx context.Context, userID uuid.UUID, cashBalance, monthlyIncome decimal.Decimal) error {
	var profile model.FinancialProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			now := time.Now().UTC()
			profile = model.FinancialProfileModel{
				ID:            uuid.New(),
				UserID:        userID,
				CashBalance:   cashBalance,
				MonthlyIncome: monthlyIncome,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			return r.db.WithContext(ctx).Create(&profile).Error
		}
		return result.Error
	}

	profile.CashBalance = cashBalance
	profile.MonthlyIncome = monthlyIncome
	profile.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Save(&profile).Error
}

// AddTransaction persists a new transaction for the user.
func (r *stateRepository) AddTransaction(ctx context.Context, userID uuid.UUID, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(userID, transaction)
	return r.db.WithContext(ctx).Create(transactionModel).Error
}

// DeleteTransaction removes a transaction owned by the user.
func (r *stateRepository) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// AddLoan persists a new loan for the user.
func (r *stateRepository) AddLoan(ctx context.Context, userID uuid.UUID, loan *entity.Loan) error {
	loanModel := model.LoanFromEntity(userID, loan)
	now := time.Now().UTC()
	loanModel.CreatedAt = now
	loanModel.UpdatedAt = now
	return r.db.WithContext(ctx).Create(loanModel).Error
}

// DeleteLoan removes a loan owned by the user.
func (r *stateRepository) DeleteLoan(ctx context.Context, userID, loanID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", loanID, userID).
		Delete(&model.LoanModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// AddCreditCard persists a new credit card for the user.
func (r *stateRepository) AddCreditCard(ctx context.Context, userID uuid.UUID, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(userID, card)
	now := time.Now().UTC()
	cardModel.CreatedAt = now
	cardModel.UpdatedAt = now
	return r.db.WithContext(ctx).Create(cardModel).Error
}

// DeleteCreditCard removes a credit card owned by the user.
func (r *stateRepository) DeleteCreditCard(ctx context.Context, userID, cardID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, userID).
		Delete(&model.CreditCardModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// AddInvestment persists a new investment for the user.
func (r *stateRepository) AddInvestment(ctx context.Context, userID uuid.UUID, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(userID, investment)
	now := time.Now().UTC()
	investmentModel.CreatedAt = now
	investmentModel.UpdatedAt = now
	return r.db.WithContext(ctx).Create(investmentModel).Error
}

// DeleteInvestment removes an investment owned by the user.
func (r *stateRepository) DeleteInvestment(ctx context.Context, userID, investmentID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", investmentID, userID).
		Delete(&model.InvestmentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}
