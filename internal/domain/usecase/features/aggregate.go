package features

import (
	"math"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
)

// Aggregates holds the per-customer scalar summaries obtained by grouping
// the transaction set on customer identity.
type Aggregates struct {
	TxnCount           int
	TotalDebit         float64 // sum of amounts < 0; empty sum = 0
	TotalCredit        float64 // sum of amounts > 0; empty sum = 0
	AvgAmount          float64
	DebitToCreditRatio *float64 // nil when TotalCredit == 0, never Inf
}

// AggregateByCustomer reduces the transaction set to one Aggregates value
// per distinct customer. Customers that never appear in the transaction
// set produce no entry; the assembler must not fabricate rows for them.
func AggregateByCustomer(txns []entity.NormalizedTransaction) map[string]Aggregates {
	type accumulator struct {
		count  int
		debit  float64
		credit float64
		sum    float64
	}

	byCustomer := make(map[string]*accumulator)
	for i := range txns {
		t := &txns[i]
		acc := byCustomer[t.CustomerID]
		if acc == nil {
			acc = &accumulator{}
			byCustomer[t.CustomerID] = acc
		}
		acc.count++
		acc.sum += t.Amount
		switch {
		case t.Amount < 0:
			acc.debit += t.Amount
		case t.Amount > 0:
			acc.credit += t.Amount
		}
	}

	aggregates := make(map[string]Aggregates, len(byCustomer))
	for customerID, acc := range byCustomer {
		agg := Aggregates{
			TxnCount:    acc.count,
			TotalDebit:  acc.debit,
			TotalCredit: acc.credit,
			AvgAmount:   acc.sum / float64(acc.count),
		}
		if acc.credit > 0 {
			ratio := math.Abs(acc.debit) / acc.credit
			agg.DebitToCreditRatio = &ratio
		}
		aggregates[customerID] = agg
	}
	return aggregates
}
