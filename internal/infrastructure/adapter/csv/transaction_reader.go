package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/port/core"
)

const transactionsTable = "transactions"

// transactionColumns are the required columns of the transactions table
var transactionColumns = []string{
	"transaction_id",
	"customer_id",
	"txn_timestamp",
	"amount",
	"txn_type",
	"description",
}

// timestampLayouts are accepted in order; the upstream export uses ISO 8601
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TransactionReader loads the transaction log from a CSV file. It
// implements the TransactionSource port.
type TransactionReader struct {
	path   string
	logger coreport.Logger
}

// NewTransactionReader creates a reader for the given CSV file
func NewTransactionReader(path string, logger coreport.Logger) *TransactionReader {
	return &TransactionReader{path: path, logger: logger}
}

// LoadTransactions reads the full transaction set. A missing required
// column aborts with a SchemaError before any row is parsed; malformed
// cells fail the load since input is contractually pre-audited.
func (r *TransactionReader) LoadTransactions(ctx context.Context) (txns []entity.Transaction, err error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close transactions file: %w", cerr)
		}
	}()

	reader := stdcsv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read transactions header: %w", err)
	}

	columns, err := columnIndex(transactionsTable, header, transactionColumns)
	if err != nil {
		return nil, err
	}

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read transactions row %d: %w", row, err)
		}

		txn, err := parseTransaction(record, columns, row)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	r.logger.Debug("Transactions loaded", map[string]any{
		"path": r.path,
		"rows": len(txns),
	})
	return txns, nil
}

// parseTransaction converts one CSV record into a transaction entity
func parseTransaction(record []string, columns map[string]int, row int) (entity.Transaction, error) {
	timestamp, err := parseTimestamp(record[columns["txn_timestamp"]])
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("%w: row %d: %q", errs.ErrInvalidTimestamp, row, record[columns["txn_timestamp"]])
	}

	amount, err := strconv.ParseFloat(record[columns["amount"]], 64)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("%w: row %d: %q", errs.ErrInvalidAmount, row, record[columns["amount"]])
	}

	txnType := record[columns["txn_type"]]
	if !entity.IsValidTransactionType(txnType) {
		return entity.Transaction{}, fmt.Errorf("%w: row %d: %q", errs.ErrInvalidTransactionType, row, txnType)
	}

	return entity.Transaction{
		TransactionID: record[columns["transaction_id"]],
		CustomerID:    record[columns["customer_id"]],
		Timestamp:     timestamp,
		Amount:        amount,
		Type:          entity.TransactionType(txnType),
		Description:   record[columns["description"]],
	}, nil
}

// parseTimestamp tries each accepted layout in order
func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// columnIndex maps required column names to their position in the header.
// Column order in the file does not matter; a missing column is fatal.
func columnIndex(table string, header []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, errs.NewSchemaError(table, name)
		}
	}
	return index, nil
}
