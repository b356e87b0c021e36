// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendRiskAlert notifies a user that their assessment landed in the critical
// emergency-fund band.
func (c *ResendClient) SendRiskAlert(ctx context.Context, toEmail, toName string, assessment *valueobject.Assessment) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{toEmail},
		Subject: "Your emergency fund needs attention",
		Text:    riskAlertBody(toName, assessment),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send risk alert: %w", err)
	}
	return nil
}

// riskAlertBody renders the plain-text alert email.
func riskAlertBody(name string, assessment *valueobject.Assessment) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", name))
	sb.WriteString("Your latest financial check-in shows your emergency fund covers ")
	sb.WriteString(fmt.Sprintf("%s months of expenses, which puts it in the %s band.\n\n",
		assessment.EmergencyFundMonths.StringFixed(1), assessment.EmergencyFundBand))
	sb.WriteString(fmt.Sprintf("Debt to income: %s%% (%s)\n",
		assessment.DebtToIncomeRatio.StringFixed(1), assessment.DebtToIncomeBand))
	if assessment.HighInterestDebt {
		sb.WriteString("You are also carrying high-interest debt.\n")
	}
	sb.WriteString("\nConsider pausing discretionary spending until you have at least one month of expenses in cash.\n")

	return sb.String()
}

var _ adapter.EmailSender = (*ResendClient)(nil)
