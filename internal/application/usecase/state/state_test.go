package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
)

type fakeStateRepo struct {
	state        *entity.FinancialState
	transactions []*entity.Transaction
	loans        []*entity.Loan
	cards        []*entity.CreditCard
	investments  []*entity.Investment
	saveErr      error
	deleteErr    error
}

func (f *fakeStateRepo) GetState(ctx context.Context, userID uuid.UUID) (*entity.FinancialState, error) {
	if f.state == nil {
		return nil, domainerror.ErrStateNotFound
	}
	return f.state, nil
}

func (f *fakeStateRepo) SaveProfile(ctx context.Context, userID uuid.UUID, cashBalance, monthlyIncome decimal.Decimal) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.state = entity.NewFinancialState(cashBalance, monthlyIncome)
	return nil
}

func (f *fakeStateRepo) AddTransaction(ctx context.Context, userID uuid.UUID, transaction *entity.Transaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeStateRepo) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeStateRepo) AddLoan(ctx context.Context, userID uuid.UUID, loan *entity.Loan) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.loans = append(f.loans, loan)
	return nil
}

func (f *fakeStateRepo) DeleteLoan(ctx context.Context, userID, loanID uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeStateRepo) AddCreditCard(ctx context.Context, userID uuid.UUID, card *entity.CreditCard) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cards = append(f.cards, card)
	return nil
}

func (f *fakeStateRepo) DeleteCreditCard(ctx context.Context, userID, cardID uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeStateRepo) AddInvestment(ctx context.Context, userID uuid.UUID, investment *entity.Investment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.investments = append(f.investments, investment)
	return nil
}

func (f *fakeStateRepo) DeleteInvestment(ctx context.Context, userID, investmentID uuid.UUID) error {
	return f.deleteErr
}

type fakeProjectionCache struct {
	invalidated int
	err         error
}

func (f *fakeProjectionCache) Get(ctx context.Context, userID uuid.UUID, horizonMonths int) ([]entity.MonthlyData, bool, error) {
	return nil, false, nil
}

func (f *fakeProjectionCache) Set(ctx context.Context, userID uuid.UUID, horizonMonths int, series []entity.MonthlyData, ttl time.Duration) error {
	return nil
}

func (f *fakeProjectionCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	f.invalidated++
	return f.err
}

func TestAddTransactionUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("persists a valid transaction and invalidates projections", func(t *testing.T) {
		repo := &fakeStateRepo{}
		cache := &fakeProjectionCache{}
		uc := NewAddTransactionUseCase(repo, cache)

		transaction, err := uc.Execute(context.Background(), AddTransactionInput{
			UserID:      userID,
			Date:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Description: "Rent",
			Amount:      decimal.NewFromInt(1200),
			Category:    "housing",
			Type:        entity.TransactionTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if transaction.ID == uuid.Nil {
			t.Fatal("expected a generated transaction ID")
		}
		if len(repo.transactions) != 1 {
			t.Fatalf("expected 1 persisted transaction, got %d", len(repo.transactions))
		}
		if cache.invalidated != 1 {
			t.Fatalf("expected 1 cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("rejects an unknown transaction type", func(t *testing.T) {
		repo := &fakeStateRepo{}
		uc := NewAddTransactionUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), AddTransactionInput{
			UserID: userID,
			Date:   time.Now(),
			Amount: decimal.NewFromInt(100),
			Type:   entity.TransactionType("transfer"),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Fatal("invalid transaction must not be persisted")
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewAddTransactionUseCase(&fakeStateRepo{}, nil)

		_, err := uc.Execute(context.Background(), AddTransactionInput{
			UserID: userID,
			Date:   time.Now(),
			Amount: decimal.Zero,
			Type:   entity.TransactionTypeIncome,
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("cache invalidation failure does not fail the mutation", func(t *testing.T) {
		repo := &fakeStateRepo{}
		cache := &fakeProjectionCache{err: errors.New("redis down")}
		uc := NewAddTransactionUseCase(repo, cache)

		_, err := uc.Execute(context.Background(), AddTransactionInput{
			UserID:      userID,
			Date:        time.Now(),
			Description: "Groceries",
			Amount:      decimal.NewFromInt(80),
			Type:        entity.TransactionTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.transactions) != 1 {
			t.Fatal("transaction should persist even when the cache fails")
		}
	})
}

func TestAddLoanUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("computes the amortized payment once at creation", func(t *testing.T) {
		repo := &fakeStateRepo{}
		cache := &fakeProjectionCache{}
		uc := NewAddLoanUseCase(repo, cache)

		loan, err := uc.Execute(context.Background(), AddLoanInput{
			UserID:       userID,
			Name:         "Car loan",
			Principal:    decimal.NewFromInt(10000),
			InterestRate: 6,
			TermMonths:   60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := decimal.RequireFromString("193.33")
		diff := loan.MonthlyPayment.Sub(want).Abs()
		if diff.GreaterThan(decimal.RequireFromString("0.01")) {
			t.Fatalf("expected payment near %s, got %s", want, loan.MonthlyPayment)
		}
		if !loan.RemainingBalance.Equal(loan.Principal) {
			t.Fatalf("a new loan starts at full balance, got %s", loan.RemainingBalance)
		}
		if cache.invalidated != 1 {
			t.Fatalf("expected 1 cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("rejects invalid loan parameters before persisting", func(t *testing.T) {
		repo := &fakeStateRepo{}
		uc := NewAddLoanUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), AddLoanInput{
			UserID:       userID,
			Name:         "Bad loan",
			Principal:    decimal.Zero,
			InterestRate: 5,
			TermMonths:   12,
		})
		if !errors.Is(err, domainerror.ErrInvalidLoanParameters) {
			t.Fatalf("expected ErrInvalidLoanParameters, got %v", err)
		}
		if len(repo.loans) != 0 {
			t.Fatal("invalid loan must not be persisted")
		}
	})
}

func TestAddInvestmentUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects an unknown risk tier", func(t *testing.T) {
		uc := NewAddInvestmentUseCase(&fakeStateRepo{}, nil)

		_, err := uc.Execute(context.Background(), AddInvestmentInput{
			UserID:   userID,
			Name:     "Fund",
			Balance:  decimal.NewFromInt(1000),
			RiskTier: entity.InvestmentRiskTier("extreme"),
		})
		if !errors.Is(err, domainerror.ErrInvalidRiskTier) {
			t.Fatalf("expected ErrInvalidRiskTier, got %v", err)
		}
	})

	t.Run("rejects negative figures", func(t *testing.T) {
		uc := NewAddInvestmentUseCase(&fakeStateRepo{}, nil)

		_, err := uc.Execute(context.Background(), AddInvestmentInput{
			UserID:              userID,
			Name:                "Fund",
			Balance:             decimal.NewFromInt(-1),
			MonthlyContribution: decimal.NewFromInt(100),
			RiskTier:            entity.InvestmentRiskLow,
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("persists a valid investment", func(t *testing.T) {
		repo := &fakeStateRepo{}
		cache := &fakeProjectionCache{}
		uc := NewAddInvestmentUseCase(repo, cache)

		investment, err := uc.Execute(context.Background(), AddInvestmentInput{
			UserID:              userID,
			Name:                "Index fund",
			Balance:             decimal.NewFromInt(15000),
			AnnualReturnRate:    7,
			MonthlyContribution: decimal.NewFromInt(500),
			RiskTier:            entity.InvestmentRiskMedium,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if investment.RiskTier != entity.InvestmentRiskMedium {
			t.Fatalf("unexpected risk tier %q", investment.RiskTier)
		}
		if len(repo.investments) != 1 || cache.invalidated != 1 {
			t.Fatal("expected the investment persisted and the cache invalidated")
		}
	})
}

func TestUpdateProfileUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("saves the profile and invalidates projections", func(t *testing.T) {
		repo := &fakeStateRepo{}
		cache := &fakeProjectionCache{}
		uc := NewUpdateProfileUseCase(repo, cache)

		err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID:        userID,
			CashBalance:   decimal.NewFromInt(2500),
			MonthlyIncome: decimal.NewFromInt(4200),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.state == nil {
			t.Fatal("expected the profile to be saved")
		}
		if cache.invalidated != 1 {
			t.Fatalf("expected 1 cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		repo := &fakeStateRepo{saveErr: errors.New("db down")}
		cache := &fakeProjectionCache{}
		uc := NewUpdateProfileUseCase(repo, cache)

		err := uc.Execute(context.Background(), UpdateProfileInput{UserID: userID})
		if err == nil {
			t.Fatal("expected an error")
		}
		if cache.invalidated != 0 {
			t.Fatal("a failed mutation must not invalidate the cache")
		}
	})
}

func TestDeleteEntryUseCases(t *testing.T) {
	userID := uuid.New()
	entryID := uuid.New()

	t.Run("deleting a loan invalidates projections", func(t *testing.T) {
		cache := &fakeProjectionCache{}
		uc := NewDeleteLoanUseCase(&fakeStateRepo{}, cache)

		if err := uc.Execute(context.Background(), userID, entryID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.invalidated != 1 {
			t.Fatalf("expected 1 cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("a missing entry surfaces not found and skips invalidation", func(t *testing.T) {
		cache := &fakeProjectionCache{}
		uc := NewDeleteInvestmentUseCase(&fakeStateRepo{deleteErr: domainerror.ErrEntryNotFound}, cache)

		err := uc.Execute(context.Background(), userID, entryID)
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
		if cache.invalidated != 0 {
			t.Fatal("a failed delete must not invalidate the cache")
		}
	})
}
