// Package models provides the data structures that flow through the
// prepare and transform pipeline.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reserved category labels.
const (
	CategoryTransfer = "Transfer"
	CategoryNull     = "Null"
)

// TransactionType is the classification derived from a transaction's amount
// sign and category.
type TransactionType string

const (
	TypeCredit       TransactionType = "Credit"
	TypeDebit        TransactionType = "Debit"
	TypeNull         TransactionType = "Null"
	TypeUnclassified TransactionType = "Unclassified"
)

// String returns the type label.
func (t TransactionType) String() string {
	return string(t)
}

// Classify assigns a TransactionType from the amount sign and category.
// Zero amounts are Null only for the reserved Transfer and Null categories.
func Classify(amount decimal.Decimal, category string) TransactionType {
	switch amount.Sign() {
	case 1:
		return TypeCredit
	case -1:
		return TypeDebit
	}
	if IsReservedCategory(category) {
		return TypeNull
	}
	return TypeUnclassified
}

// IsReservedCategory reports whether category is Transfer or Null.
func IsReservedCategory(category string) bool {
	return category == CategoryTransfer || category == CategoryNull
}

// Transaction is one row of the export. Name and Balance are carried but
// not used by aggregation.
type Transaction struct {
	Date     time.Time
	Amount   decimal.Decimal
	Name     string
	Balance  decimal.NullDecimal
	Category string
	Type     TransactionType
}

// NewTransaction builds a Transaction with its Type derived.
func NewTransaction(date time.Time, amount decimal.Decimal, name string, balance decimal.NullDecimal, category string) Transaction {
	return Transaction{
		Date:     date,
		Amount:   amount,
		Name:     name,
		Balance:  balance,
		Category: category,
		Type:     Classify(amount, category),
	}
}

// IsTransfer reports whether the transaction is a transfer between own accounts.
func (t Transaction) IsTransfer() bool {
	return t.Category == CategoryTransfer
}
