// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fincast/backend/internal/domain/valueobject"
)

// EmailSender defines the interface for outbound email delivery.
type EmailSender interface {
	// SendRiskAlert notifies a user that their assessment landed in the
	// critical emergency-fund band.
	SendRiskAlert(ctx context.Context, toEmail, toName string, assessment *valueobject.Assessment) error
}
