// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fincast/backend/internal/domain/entity"
)

// AdviceRequest represents the request body for generating advice. When a
// simulation is attached, the what-if variant derived from it is included in
// the advisor payload alongside the current snapshot.
type AdviceRequest struct {
	Question   string           `json:"question" binding:"required,min=1,max=2000"`
	Simulation *SimulateRequest `json:"simulation,omitempty"`
}

// AdviceResponse represents a piece of generated advice.
type AdviceResponse struct {
	ID                string    `json:"id"`
	Question          string    `json:"question"`
	Answer            string    `json:"answer"`
	CoveredEntityIDs  []string  `json:"covered_entity_ids"`
	IncludedSimulated bool      `json:"included_simulated"`
	CreatedAt         time.Time `json:"created_at"`
}

// AdviceListResponse represents the advice history for a user.
type AdviceListResponse struct {
	Advice []AdviceResponse `json:"advice"`
}

// ToAdviceResponse converts a domain Advice entity to its DTO.
func ToAdviceResponse(advice *entity.Advice) AdviceResponse {
	ids := advice.CoveredEntityIDs
	if ids == nil {
		ids = []string{}
	}
	return AdviceResponse{
		ID:                advice.ID.String(),
		Question:          advice.Question,
		Answer:            advice.Answer,
		CoveredEntityIDs:  ids,
		IncludedSimulated: advice.IncludedSimulated,
		CreatedAt:         advice.CreatedAt,
	}
}
