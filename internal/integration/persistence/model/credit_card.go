// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	CashbackRate float64         `gorm:"type:decimal(5,2);not null"`
	AnnualFee    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	InterestRate float64         `gorm:"type:decimal(6,3);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:           m.ID,
		Name:         m.Name,
		CashbackRate: m.CashbackRate,
		AnnualFee:    m.AnnualFee,
		InterestRate: m.InterestRate,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardFromEntity(userID uuid.UUID, card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:           card.ID,
		UserID:       userID,
		Name:         card.Name,
		CashbackRate: card.CashbackRate,
		AnnualFee:    card.AnnualFee,
		InterestRate: card.InterestRate,
	}
}
