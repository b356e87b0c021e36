// Package advisor contains the advice generation use case.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// GenerateAdviceInput represents the input for advice generation.
type GenerateAdviceInput struct {
	UserID    uuid.UUID
	Question  string
	State     *entity.FinancialState
	Simulated *entity.FinancialState // Optional what-if state, may be nil
}

// GenerateAdviceOutput represents the generated advice.
type GenerateAdviceOutput struct {
	Advice *entity.Advice
}

// GenerateAdviceUseCase builds the serializable snapshot payload, calls the
// external advice service and records the result. The engine's contract ends
// at producing the payload; everything network-related lives behind the
// AdviceService adapter.
type GenerateAdviceUseCase struct {
	adviceService adapter.AdviceService
	adviceRepo    adapter.AdviceRepository
}

// NewGenerateAdviceUseCase creates a new GenerateAdviceUseCase instance.
func NewGenerateAdviceUseCase(adviceService adapter.AdviceService, adviceRepo adapter.AdviceRepository) *GenerateAdviceUseCase {
	return &GenerateAdviceUseCase{
		adviceService: adviceService,
		adviceRepo:    adviceRepo,
	}
}

// Execute generates advice for the user's question over their current (and
// optionally simulated) state.
func (uc *GenerateAdviceUseCase) Execute(ctx context.Context, input GenerateAdviceInput) (*GenerateAdviceOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeEmptyQuestion,
			"question cannot be empty",
			domainerror.ErrEmptyQuestion,
		)
	}

	if !uc.adviceService.IsAvailable() {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeAdvisorUnavailable,
			"advisor service is not configured",
			domainerror.ErrAdvisorUnavailable,
		)
	}

	request := &adapter.AdviceRequest{
		State:      input.State,
		Simulated:  input.Simulated,
		Assessment: valueobject.Assess(input.State),
		Question:   question,
	}

	answer, err := uc.adviceService.Generate(ctx, request)
	if err != nil {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeAdvisorRequestFailed,
			"failed to generate advice",
			fmt.Errorf("%w: %v", domainerror.ErrAdvisorRequestFailed, err),
		)
	}

	advice := entity.NewAdvice(input.UserID, question, answer, coveredEntityIDs(input.State), input.Simulated != nil)

	// History is best-effort: losing a record must not lose the answer.
	if err := uc.adviceRepo.Save(ctx, advice); err != nil {
		slog.Warn("Failed to save advice history", "user_id", input.UserID, "error", err)
	}

	return &GenerateAdviceOutput{Advice: advice}, nil
}

func coveredEntityIDs(state *entity.FinancialState) []string {
	ids := make([]string, 0, len(state.Loans)+len(state.CreditCards)+len(state.Investments))
	for _, l := range state.Loans {
		ids = append(ids, l.ID.String())
	}
	for _, c := range state.CreditCards {
		ids = append(ids, c.ID.String())
	}
	for _, inv := range state.Investments {
		ids = append(ids, inv.ID.String())
	}
	return ids
}
