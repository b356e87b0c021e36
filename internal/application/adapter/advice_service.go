// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// AdviceRequest is the serializable payload handed to the external advice
// generation service: the current snapshot, an optional what-if variant, the
// instantaneous risk assessment and the user's question. All values are plain
// data with no cyclic references.
type AdviceRequest struct {
	State      *entity.FinancialState
	Simulated  *entity.FinancialState // Optional what-if state, may be nil
	Assessment *valueobject.Assessment
	Question   string
}

// AdviceService defines the interface for the external advice generation
// service. Retries, timeouts and cancellation live behind this boundary, not
// in the engine.
type AdviceService interface {
	// Generate produces advice text for the given request.
	Generate(ctx context.Context, request *AdviceRequest) (string, error)

	// IsAvailable checks if the advice service is configured.
	IsAvailable() bool
}
