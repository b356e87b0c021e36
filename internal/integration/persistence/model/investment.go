// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                string          `gorm:"type:varchar(100);not null"`
	Balance             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AnnualReturnRate    float64         `gorm:"type:decimal(6,3);not null"`
	MonthlyContribution decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RiskTier            string          `gorm:"type:varchar(10);not null"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:                  m.ID,
		Name:                m.Name,
		Balance:             m.Balance,
		AnnualReturnRate:    m.AnnualReturnRate,
		MonthlyContribution: m.MonthlyContribution,
		RiskTier:            entity.InvestmentRiskTier(m.RiskTier),
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(userID uuid.UUID, investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:                  investment.ID,
		UserID:              userID,
		Name:                investment.Name,
		Balance:             investment.Balance,
		AnnualReturnRate:    investment.AnnualReturnRate,
		MonthlyContribution: investment.MonthlyContribution,
		RiskTier:            string(investment.RiskTier),
	}
}
