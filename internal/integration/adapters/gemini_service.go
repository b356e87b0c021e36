// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
)

// GeminiService implements the AdviceService using Google Gemini. The model
// receives a plain-text rendering of the financial snapshot (and the what-if
// variant when present), the instantaneous risk assessment and the user's
// question, and answers in prose.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Generate produces advice text for the given request.
func (s *GeminiService) Generate(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	answer, err := extractText(resp)
	if err != nil {
		return "", err
	}

	return answer, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.AdviceRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance advisor. You are given a household's
financial snapshot, a risk assessment derived from it, and a question from the
account holder. Give practical, specific advice grounded in the numbers below.

RULES:
- Base every recommendation on the figures provided; never invent balances or rates.
- Prefer concrete actions ("pay X toward loan Y") over generic advice.
- Answer in plain prose, no markdown, at most three short paragraphs.
- Do not provide legal or tax advice; suggest a professional when asked for either.

CURRENT SNAPSHOT:
`)
	writeState(&sb, request.State)

	if request.Simulated != nil {
		sb.WriteString("\nWHAT-IF SCENARIO UNDER CONSIDERATION:\n")
		writeState(&sb, request.Simulated)
	}

	if request.Assessment != nil {
		sb.WriteString("\nRISK ASSESSMENT:\n")
		sb.WriteString(fmt.Sprintf("- Emergency fund: %s (%s months of expenses covered)\n",
			request.Assessment.EmergencyFundBand, request.Assessment.EmergencyFundMonths.StringFixed(1)))
		sb.WriteString(fmt.Sprintf("- Debt to income: %s (%s%%)\n",
			request.Assessment.DebtToIncomeBand, request.Assessment.DebtToIncomeRatio.StringFixed(1)))
		sb.WriteString(fmt.Sprintf("- High interest debt present: %t\n", request.Assessment.HighInterestDebt))
		sb.WriteString(fmt.Sprintf("- Estimated credit score: %d\n", request.Assessment.CreditScore))
	}

	sb.WriteString("\nQUESTION:\n")
	sb.WriteString(request.Question)
	sb.WriteString("\n")

	return sb.String()
}

// writeState renders a financial snapshot as prompt text.
func writeState(sb *strings.Builder, state *entity.FinancialState) {
	sb.WriteString(fmt.Sprintf("- Cash balance: %s\n", state.CashBalance.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Monthly income (fallback): %s\n", state.MonthlyIncome.StringFixed(2)))

	for _, loan := range state.Loans {
		sb.WriteString(fmt.Sprintf("- Loan %q: balance %s of %s principal, %.2f%% APR, payment %s/month over %d months\n",
			loan.Name, loan.RemainingBalance.StringFixed(2), loan.Principal.StringFixed(2),
			loan.InterestRate, loan.MonthlyPayment.StringFixed(2), loan.TermMonths))
	}
	for _, card := range state.CreditCards {
		sb.WriteString(fmt.Sprintf("- Credit card %q: %.2f%% cashback, %s annual fee, %.2f%% APR\n",
			card.Name, card.CashbackRate, card.AnnualFee.StringFixed(2), card.InterestRate))
	}
	for _, inv := range state.Investments {
		sb.WriteString(fmt.Sprintf("- Investment %q: balance %s, %.2f%% annual return, contributing %s/month, %s risk\n",
			inv.Name, inv.Balance.StringFixed(2), inv.AnnualReturnRate,
			inv.MonthlyContribution.StringFixed(2), inv.RiskTier))
	}
}

// extractText pulls the text content out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return strings.TrimSpace(textContent), nil
}
