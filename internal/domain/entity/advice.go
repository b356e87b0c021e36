// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Advice is a piece of generated financial advice, kept for history. It
// records which entities (loans, cards, investments) the snapshot sent to the
// advisor contained at the time.
type Advice struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Question          string
	Answer            string
	CoveredEntityIDs  []string // IDs of the loans/cards/investments in the snapshot
	IncludedSimulated bool     // Whether a what-if state was part of the payload
	CreatedAt         time.Time
}

// NewAdvice creates a new Advice entity.
func NewAdvice(userID uuid.UUID, question, answer string, coveredEntityIDs []string, includedSimulated bool) *Advice {
	return &Advice{
		ID:                uuid.New(),
		UserID:            userID,
		Question:          question,
		Answer:            answer,
		CoveredEntityIDs:  coveredEntityIDs,
		IncludedSimulated: includedSimulated,
		CreatedAt:         time.Now().UTC(),
	}
}
