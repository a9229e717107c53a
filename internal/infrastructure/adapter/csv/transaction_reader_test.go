package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/logger"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTransactionReader(t *testing.T) {
	ctx := context.Background()

	t.Run("loads well-formed rows", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"transaction_id,customer_id,txn_timestamp,amount,txn_type,description\n"+
			"t1,1,2024-01-25,2000.50,credit,ACME PAYROLL\n"+
			"t2,1,2024-02-01 09:30:00,-12.99,debit,Netflix.com\n"+
			"t3,2,2024-02-02T10:00:00Z,-60,debit,\n")

		reader := NewTransactionReader(path, logger.NewNoopLogger())
		txns, err := reader.LoadTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txns, 3)

		assert.Equal(t, "t1", txns[0].TransactionID)
		assert.Equal(t, "1", txns[0].CustomerID)
		assert.Equal(t, time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), txns[0].Timestamp)
		assert.Equal(t, 2000.50, txns[0].Amount)
		assert.Equal(t, entity.TypeCredit, txns[0].Type)
		assert.Equal(t, "ACME PAYROLL", txns[0].Description)

		assert.Equal(t, time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC), txns[1].Timestamp)
		assert.Equal(t, -12.99, txns[1].Amount)

		assert.Equal(t, "", txns[2].Description)
	})

	t.Run("column order in the file does not matter", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"description,amount,customer_id,transaction_id,txn_type,txn_timestamp\n"+
			"coffee,-3.20,7,t1,debit,2024-03-01\n")

		txns, err := NewTransactionReader(path, logger.NewNoopLogger()).LoadTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "7", txns[0].CustomerID)
		assert.Equal(t, -3.20, txns[0].Amount)
	})

	t.Run("missing column is a fatal schema error", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"transaction_id,customer_id,amount,txn_type,description\n"+
			"t1,1,10,credit,x\n")

		_, err := NewTransactionReader(path, logger.NewNoopLogger()).LoadTransactions(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrMissingColumn)
		assert.True(t, errs.IsFatal(err))
		assert.Contains(t, err.Error(), "txn_timestamp")
	})

	t.Run("unparseable timestamp fails the load", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"transaction_id,customer_id,txn_timestamp,amount,txn_type,description\n"+
			"t1,1,25/01/2024,10,credit,x\n")

		_, err := NewTransactionReader(path, logger.NewNoopLogger()).LoadTransactions(ctx)
		assert.ErrorIs(t, err, errs.ErrInvalidTimestamp)
	})

	t.Run("unparseable amount fails the load", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"transaction_id,customer_id,txn_timestamp,amount,txn_type,description\n"+
			"t1,1,2024-01-25,ten,credit,x\n")

		_, err := NewTransactionReader(path, logger.NewNoopLogger()).LoadTransactions(ctx)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("unknown transaction type fails the load", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"transaction_id,customer_id,txn_timestamp,amount,txn_type,description\n"+
			"t1,1,2024-01-25,10,transfer,x\n")

		_, err := NewTransactionReader(path, logger.NewNoopLogger()).LoadTransactions(ctx)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})

	t.Run("missing file surfaces to the caller", func(t *testing.T) {
		reader := NewTransactionReader(filepath.Join(t.TempDir(), "absent.csv"), logger.NewNoopLogger())
		_, err := reader.LoadTransactions(ctx)
		assert.Error(t, err)
		assert.False(t, errs.IsFatal(err))
	})
}
