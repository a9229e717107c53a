package entity

import (
	"time"
)

// TransactionType represents the direction of a transaction
type TransactionType string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Transaction represents a single dated financial transaction from the
// externally supplied event log. Instances are immutable once loaded.
type Transaction struct {
	TransactionID string          // Unique external transaction identifier
	CustomerID    string          // ID of the customer this transaction belongs to
	Timestamp     time.Time       // When the transaction occurred
	Amount        float64         // Signed amount: positive = income/credit, negative = spend/debit
	Type          TransactionType // Declared direction (credit/debit)
	Description   string          // Free-text description, may be empty
}

// IsCredit returns true if the transaction carries income.
// Direction follows the amount sign, which is the source-of-truth
// convention of the upstream log; Type is carried but not re-derived.
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if the transaction carries spend.
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// IsValidTransactionType validates if the declared type is allowed
func IsValidTransactionType(txnType string) bool {
	return txnType == string(TypeCredit) || txnType == string(TypeDebit)
}

// NormalizedTransaction is a transaction enriched with a canonicalized
// description and the category matches derived from it. It exists only
// inside a pipeline run and is never persisted.
type NormalizedTransaction struct {
	Transaction
	CleanDescription string
	Categories       map[string]bool
}

// InCategory reports whether the transaction matched the named category.
func (n *NormalizedTransaction) InCategory(name string) bool {
	return n.Categories[name]
}
