// Package risk contains the financial health assessment use case.
package risk

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// AssessInput represents the input for a risk assessment.
type AssessInput struct {
	UserID uuid.UUID
	State  *entity.FinancialState
}

// AssessUseCase computes the risk bands and estimated credit score for a
// state snapshot, and notifies the user by email when the assessment lands
// in the critical emergency-fund band.
type AssessUseCase struct {
	userRepo    adapter.UserRepository
	emailSender adapter.EmailSender
}

// NewAssessUseCase creates a new AssessUseCase instance. Both dependencies
// are optional: without them the assessment still runs, only the alert is
// skipped.
func NewAssessUseCase(userRepo adapter.UserRepository, emailSender adapter.EmailSender) *AssessUseCase {
	return &AssessUseCase{userRepo: userRepo, emailSender: emailSender}
}

// Execute classifies the state. The classification itself is pure; the email
// alert is best-effort and never fails the assessment.
func (uc *AssessUseCase) Execute(ctx context.Context, input AssessInput) (*valueobject.Assessment, error) {
	assessment := valueobject.Assess(input.State)

	if assessment.EmergencyFundBand == valueobject.EmergencyFundCritical {
		uc.sendAlert(ctx, input.UserID, assessment)
	}

	return assessment, nil
}

func (uc *AssessUseCase) sendAlert(ctx context.Context, userID uuid.UUID, assessment *valueobject.Assessment) {
	if uc.userRepo == nil || uc.emailSender == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load user for risk alert", "user_id", userID, "error", err)
		return
	}
	if !user.RiskAlerts {
		return
	}

	if err := uc.emailSender.SendRiskAlert(ctx, user.Email, user.Name, assessment); err != nil {
		slog.Warn("Failed to send risk alert email", "user_id", userID, "error", err)
	}
}
