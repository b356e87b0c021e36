// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Valid reports whether the transaction type is one of the closed set.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single financial transaction. Amounts are always
// positive; the Type field carries the direction. Transactions are immutable
// once created and are owned by the FinancialState they belong to; newest
// entries go first by convention.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Always positive; direction comes from Type
	Category    string
	Type        TransactionType
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	date time.Time,
	description string,
	amount decimal.Decimal,
	category string,
	transactionType TransactionType,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        transactionType,
		CreatedAt:   time.Now().UTC(),
	}
}

// Clone returns an independent copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	clone := *t
	return &clone
}
