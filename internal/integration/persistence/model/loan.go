// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database.
type LoanModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name             string          `gorm:"type:varchar(100);not null"`
	Principal        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate     float64         `gorm:"type:decimal(6,3);not null"`
	MonthlyPayment   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TermMonths       int             `gorm:"not null"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:               m.ID,
		Name:             m.Name,
		Principal:        m.Principal,
		RemainingBalance: m.RemainingBalance,
		InterestRate:     m.InterestRate,
		MonthlyPayment:   m.MonthlyPayment,
		TermMonths:       m.TermMonths,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(userID uuid.UUID, loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:               loan.ID,
		UserID:           userID,
		Name:             loan.Name,
		Principal:        loan.Principal,
		RemainingBalance: loan.RemainingBalance,
		InterestRate:     loan.InterestRate,
		MonthlyPayment:   loan.MonthlyPayment,
		TermMonths:       loan.TermMonths,
	}
}
