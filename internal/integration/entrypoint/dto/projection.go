// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/fincast/backend/internal/domain/entity"

// ProjectionRequest represents the query parameters for a projection run.
type ProjectionRequest struct {
	HorizonMonths int `form:"horizon_months"`
}

// MonthlyDataResponse represents one point of a projection series.
type MonthlyDataResponse struct {
	Month       int    `json:"month"`
	Cash        string `json:"cash"`
	NetWorth    string `json:"net_worth"`
	Investments string `json:"investments"`
}

// ProjectionResponse represents a full projection series.
type ProjectionResponse struct {
	HorizonMonths int                   `json:"horizon_months"`
	Series        []MonthlyDataResponse `json:"series"`
	Cached        bool                  `json:"cached"`
}

// ToProjectionResponse converts a projection series to its DTO.
func ToProjectionResponse(horizonMonths int, series []entity.MonthlyData, cached bool) ProjectionResponse {
	response := ProjectionResponse{
		HorizonMonths: horizonMonths,
		Series:        make([]MonthlyDataResponse, 0, len(series)),
		Cached:        cached,
	}
	for _, point := range series {
		response.Series = append(response.Series, MonthlyDataResponse{
			Month:       point.Month,
			Cash:        point.Cash.StringFixed(2),
			NetWorth:    point.NetWorth.StringFixed(2),
			Investments: point.Investments.StringFixed(2),
		})
	}
	return response
}
