package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		category string
		expected TransactionType
	}{
		{name: "positive is credit", amount: "50.00", category: "Salary", expected: TypeCredit},
		{name: "negative is debit", amount: "-20.00", category: "Groceries", expected: TypeDebit},
		{name: "positive transfer is still credit", amount: "10", category: "Transfer", expected: TypeCredit},
		{name: "negative null is still debit", amount: "-1", category: "Null", expected: TypeDebit},
		{name: "zero transfer is null", amount: "0", category: "Transfer", expected: TypeNull},
		{name: "zero null is null", amount: "0.00", category: "Null", expected: TypeNull},
		{name: "zero ordinary category is unclassified", amount: "0", category: "Food", expected: TypeUnclassified},
		{name: "zero empty category is unclassified", amount: "0", category: "", expected: TypeUnclassified},
		{name: "reserved labels are case sensitive", amount: "0", category: "transfer", expected: TypeUnclassified},
		{name: "tiny positive", amount: "0.001", category: "", expected: TypeCredit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			got := Classify(amount, tt.category)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, Classify(amount, tt.category), "classification must be repeatable")
		})
	}
}

func TestNewTransaction_DerivesType(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	tx := NewTransaction(date, decimal.RequireFromString("-12.50"), "Coffee", decimal.NullDecimal{}, "Food")

	assert.Equal(t, TypeDebit, tx.Type)
	assert.Equal(t, "Debit", tx.Type.String())
	assert.False(t, tx.IsTransfer())
	assert.False(t, tx.Balance.Valid)

	transfer := NewTransaction(date, decimal.Zero, "", decimal.NullDecimal{}, CategoryTransfer)
	assert.True(t, transfer.IsTransfer())
	assert.Equal(t, TypeNull, transfer.Type)
}

func TestIsReservedCategory(t *testing.T) {
	assert.True(t, IsReservedCategory("Transfer"))
	assert.True(t, IsReservedCategory("Null"))
	assert.False(t, IsReservedCategory(""))
	assert.False(t, IsReservedCategory("NULL"))
}
