// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// MonthlyData is one point of a projection series: the cash, net-worth and
// investment figures at the start of a given month, before that month's flows
// are applied. A projection of horizon h produces exactly h+1 of these,
// month 0 reflecting the input snapshot unchanged. The series is ephemeral:
// it is recomputed from the snapshot on every run, never cached or mutated.
type MonthlyData struct {
	Month       int             `json:"month"`
	Cash        decimal.Decimal `json:"cash"`
	NetWorth    decimal.Decimal `json:"net_worth"`
	Investments decimal.Decimal `json:"investments"`
}
