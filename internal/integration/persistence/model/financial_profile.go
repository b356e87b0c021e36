// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialProfileModel represents the financial_profiles table: the per-user
// scalar figures of a financial snapshot (cash balance and the fallback
// monthly income). One row per user.
type FinancialProfileModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	CashBalance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the FinancialProfileModel.
func (FinancialProfileModel) TableName() string {
	return "financial_profiles"
}
