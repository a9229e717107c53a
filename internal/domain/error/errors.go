package error

import (
	"errors"
	"fmt"
)

// Base error types
var (
	// ErrMissingColumn is returned when a required column is absent from an input table
	ErrMissingColumn = errors.New("required column missing")

	// ErrInvalidTimestamp is returned when a transaction timestamp cannot be parsed
	ErrInvalidTimestamp = errors.New("invalid transaction timestamp")

	// ErrInvalidAmount is returned when a transaction amount is not a decimal number
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidTransactionType is returned when txn_type is not credit or debit
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidLabel is returned when defaulted_within_90d is not 0 or 1
	ErrInvalidLabel = errors.New("invalid label value")

	// ErrEmptyDataset is returned when the transaction log contains no rows;
	// the reference date is undefined without at least one transaction
	ErrEmptyDataset = errors.New("transaction set is empty")

	// ErrInvalidCategoryRule is returned when a category rule has no name or no keywords
	ErrInvalidCategoryRule = errors.New("invalid category rule")

	// ErrDatabaseConnection is returned when the feature store cannot be reached
	ErrDatabaseConnection = errors.New("database connection error")
)

// SchemaError describes a required column missing from an input table.
// It is fatal: the pipeline aborts before any computation.
type SchemaError struct {
	Table  string
	Column string
}

// Error implements the error interface for SchemaError
func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q: required column %q missing", e.Table, e.Column)
}

// Unwrap lets errors.Is match SchemaError against ErrMissingColumn
func (e *SchemaError) Unwrap() error {
	return ErrMissingColumn
}

// NewSchemaError creates a SchemaError for the given table and column
func NewSchemaError(table, column string) error {
	return &SchemaError{Table: table, Column: column}
}

// IsFatal reports whether an error must abort the run before computation.
// Schema violations are the only fatal class; everything else is surfaced
// to the caller as a plain load/write failure.
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}
