package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
)

// day builds a UTC midnight timestamp for fixture brevity
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// normTxn builds a normalized transaction with the given category matches
func normTxn(customerID string, ts time.Time, amount float64, categories ...string) entity.NormalizedTransaction {
	matched := make(map[string]bool, len(categories))
	for _, name := range categories {
		matched[name] = true
	}
	return entity.NormalizedTransaction{
		Transaction: entity.Transaction{
			CustomerID: customerID,
			Timestamp:  ts,
			Amount:     amount,
		},
		Categories: matched,
	}
}

func TestAggregateByCustomer(t *testing.T) {
	t.Run("counts, sums and average", func(t *testing.T) {
		txns := []entity.NormalizedTransaction{
			normTxn("1", day(2024, 1, 1), 100),
			normTxn("1", day(2024, 1, 5), -50),
			normTxn("1", day(2024, 1, 9), 20),
		}

		aggregates := AggregateByCustomer(txns)
		require.Len(t, aggregates, 1)

		agg := aggregates["1"]
		assert.Equal(t, 3, agg.TxnCount)
		assert.Equal(t, -50.0, agg.TotalDebit)
		assert.Equal(t, 120.0, agg.TotalCredit)
		assert.InDelta(t, 70.0/3.0, agg.AvgAmount, 1e-12)
		require.NotNil(t, agg.DebitToCreditRatio)
		assert.InDelta(t, 50.0/120.0, *agg.DebitToCreditRatio, 1e-12)
	})

	t.Run("debit and credit totals bracket zero", func(t *testing.T) {
		txns := []entity.NormalizedTransaction{
			normTxn("1", day(2024, 1, 1), -30),
			normTxn("1", day(2024, 1, 2), -70),
			normTxn("2", day(2024, 1, 3), 10),
		}

		aggregates := AggregateByCustomer(txns)
		for _, agg := range aggregates {
			assert.LessOrEqual(t, agg.TotalDebit, 0.0)
			assert.GreaterOrEqual(t, agg.TotalCredit, 0.0)
		}
	})

	t.Run("ratio is undefined without credit", func(t *testing.T) {
		txns := []entity.NormalizedTransaction{
			normTxn("1", day(2024, 1, 1), -30),
			normTxn("1", day(2024, 2, 1), -45),
		}

		agg := AggregateByCustomer(txns)["1"]
		assert.Equal(t, 2, agg.TxnCount)
		assert.Equal(t, -75.0, agg.TotalDebit)
		assert.Equal(t, 0.0, agg.TotalCredit)
		assert.Nil(t, agg.DebitToCreditRatio)
	})

	t.Run("ratio is zero for credit-only customers", func(t *testing.T) {
		txns := []entity.NormalizedTransaction{
			normTxn("1", day(2024, 1, 1), 500),
		}

		agg := AggregateByCustomer(txns)["1"]
		require.NotNil(t, agg.DebitToCreditRatio)
		assert.Equal(t, 0.0, *agg.DebitToCreditRatio)
	})

	t.Run("zero amounts count but affect no total", func(t *testing.T) {
		txns := []entity.NormalizedTransaction{
			normTxn("1", day(2024, 1, 1), 0),
			normTxn("1", day(2024, 1, 2), 100),
		}

		agg := AggregateByCustomer(txns)["1"]
		assert.Equal(t, 2, agg.TxnCount)
		assert.Equal(t, 0.0, agg.TotalDebit)
		assert.Equal(t, 100.0, agg.TotalCredit)
		assert.Equal(t, 50.0, agg.AvgAmount)
	})

	t.Run("customers are grouped independently", func(t *testing.T) {
		txns := []entity.NormalizedTransaction{
			normTxn("1", day(2024, 1, 1), 100),
			normTxn("2", day(2024, 1, 1), -40),
			normTxn("2", day(2024, 1, 2), 60),
		}

		aggregates := AggregateByCustomer(txns)
		require.Len(t, aggregates, 2)
		assert.Equal(t, 1, aggregates["1"].TxnCount)
		assert.Equal(t, 2, aggregates["2"].TxnCount)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		forward := []entity.NormalizedTransaction{
			normTxn("1", day(2024, 1, 1), 100),
			normTxn("1", day(2024, 1, 5), -50),
			normTxn("2", day(2024, 1, 9), 20),
		}
		reversed := []entity.NormalizedTransaction{forward[2], forward[1], forward[0]}

		assert.Equal(t, AggregateByCustomer(forward), AggregateByCustomer(reversed))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, AggregateByCustomer(nil))
	})
}
