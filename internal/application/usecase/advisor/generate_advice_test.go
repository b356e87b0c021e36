package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
)

type fakeAdviceService struct {
	available bool
	answer    string
	err       error
	lastReq   *adapter.AdviceRequest
}

func (f *fakeAdviceService) Generate(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	f.lastReq = request
	return f.answer, f.err
}

func (f *fakeAdviceService) IsAvailable() bool { return f.available }

type fakeAdviceRepo struct {
	saved []*entity.Advice
}

func (f *fakeAdviceRepo) Save(ctx context.Context, advice *entity.Advice) error {
	f.saved = append(f.saved, advice)
	return nil
}

func (f *fakeAdviceRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Advice, error) {
	return f.saved, nil
}

func adviceState() *entity.FinancialState {
	state := entity.NewFinancialState(decimal.NewFromInt(15400), decimal.NewFromInt(6200))
	state.Loans = []*entity.Loan{
		entity.NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260)),
	}
	return state
}

func TestGenerateAdvice(t *testing.T) {
	t.Run("builds payload with assessment and records history", func(t *testing.T) {
		service := &fakeAdviceService{available: true, answer: "Pay the car loan down first."}
		repo := &fakeAdviceRepo{}
		uc := NewGenerateAdviceUseCase(service, repo)

		out, err := uc.Execute(context.Background(), GenerateAdviceInput{
			UserID:   uuid.New(),
			Question: "Where should my next 500 go?",
			State:    adviceState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Advice.Answer != "Pay the car loan down first." {
			t.Errorf("unexpected answer: %q", out.Advice.Answer)
		}
		if service.lastReq.Assessment == nil {
			t.Error("expected assessment in the advisor payload")
		}
		if service.lastReq.Simulated != nil {
			t.Error("expected no simulated state in the payload")
		}
		if len(repo.saved) != 1 {
			t.Errorf("expected advice saved to history, got %d", len(repo.saved))
		}
		if len(out.Advice.CoveredEntityIDs) != 1 {
			t.Errorf("expected 1 covered entity id, got %d", len(out.Advice.CoveredEntityIDs))
		}
	})

	t.Run("empty question is rejected", func(t *testing.T) {
		uc := NewGenerateAdviceUseCase(&fakeAdviceService{available: true}, &fakeAdviceRepo{})
		_, err := uc.Execute(context.Background(), GenerateAdviceInput{
			UserID:   uuid.New(),
			Question: "   ",
			State:    adviceState(),
		})
		if !errors.Is(err, domainerror.ErrEmptyQuestion) {
			t.Errorf("expected ErrEmptyQuestion, got %v", err)
		}
	})

	t.Run("unconfigured service is reported", func(t *testing.T) {
		uc := NewGenerateAdviceUseCase(&fakeAdviceService{available: false}, &fakeAdviceRepo{})
		_, err := uc.Execute(context.Background(), GenerateAdviceInput{
			UserID:   uuid.New(),
			Question: "Help",
			State:    adviceState(),
		})
		if !errors.Is(err, domainerror.ErrAdvisorUnavailable) {
			t.Errorf("expected ErrAdvisorUnavailable, got %v", err)
		}
	})
}
