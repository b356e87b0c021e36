package risk

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/domain/valueobject"
)

type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.user != nil, nil
}

type fakeEmailSender struct {
	sent int
}

func (f *fakeEmailSender) SendRiskAlert(ctx context.Context, toEmail, toName string, assessment *valueobject.Assessment) error {
	f.sent++
	return nil
}

// criticalState has under one month of burn in cash.
func criticalState() *entity.FinancialState {
	state := entity.NewFinancialState(decimal.NewFromInt(100), decimal.NewFromInt(5000))
	state.Loans = []*entity.Loan{
		entity.NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260)),
	}
	return state
}

func TestAssessUseCase(t *testing.T) {
	t.Run("critical band triggers a risk alert", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		sender := &fakeEmailSender{}
		uc := NewAssessUseCase(&fakeUserRepo{user: user}, sender)

		result, err := uc.Execute(context.Background(), AssessInput{UserID: user.ID, State: criticalState()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EmergencyFundBand != valueobject.EmergencyFundCritical {
			t.Fatalf("expected critical band, got %q", result.EmergencyFundBand)
		}
		if sender.sent != 1 {
			t.Errorf("expected one alert email, got %d", sender.sent)
		}
	})

	t.Run("alerts respect the user opt-out", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		user.RiskAlerts = false
		sender := &fakeEmailSender{}
		uc := NewAssessUseCase(&fakeUserRepo{user: user}, sender)

		if _, err := uc.Execute(context.Background(), AssessInput{UserID: user.ID, State: criticalState()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sender.sent != 0 {
			t.Errorf("expected no alert email, got %d", sender.sent)
		}
	})

	t.Run("healthy state sends nothing", func(t *testing.T) {
		user := entity.NewUser("ana@example.com", "Ana", "hash")
		sender := &fakeEmailSender{}
		uc := NewAssessUseCase(&fakeUserRepo{user: user}, sender)

		state := entity.NewFinancialState(decimal.NewFromInt(50000), decimal.NewFromInt(5000))
		state.Loans = []*entity.Loan{
			entity.NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260)),
		}

		if _, err := uc.Execute(context.Background(), AssessInput{UserID: user.ID, State: state}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sender.sent != 0 {
			t.Errorf("expected no alert email, got %d", sender.sent)
		}
	})

	t.Run("assessment works without alert dependencies", func(t *testing.T) {
		uc := NewAssessUseCase(nil, nil)
		result, err := uc.Execute(context.Background(), AssessInput{UserID: uuid.New(), State: criticalState()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CreditScore == 0 {
			t.Error("expected a computed credit score")
		}
	})
}
