package features

import (
	"time"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
)

const (
	// trailingWindowDays is the lookback window for recent income
	trailingWindowDays = 30
	// daysPerMonth converts an activity span in days to months
	daysPerMonth = 30.0
)

// TemporalFeatures holds the recency and income-stability features for one
// customer.
type TemporalFeatures struct {
	DaysSinceLastCredit  int
	IncomeStabilityRatio *float64 // nil when lifetime monthly credit is 0
}

// ComputeTemporalFeatures derives recency and the 30-day income-stability
// ratio for every customer in the transaction set.
//
// The reference date is the maximum timestamp across the whole dataset,
// so recency is comparable between customers. Customers without a single
// credit transaction receive a shared sentinel: one day worse than the
// oldest transaction anywhere in the dataset. The sentinel is numeric and
// rankable, not a null, and is coupled to the global span on purpose.
func ComputeTemporalFeatures(txns []entity.NormalizedTransaction) map[string]TemporalFeatures {
	if len(txns) == 0 {
		return map[string]TemporalFeatures{}
	}

	referenceDate := txns[0].Timestamp
	globalMin := txns[0].Timestamp
	for i := range txns {
		ts := txns[i].Timestamp
		if ts.After(referenceDate) {
			referenceDate = ts
		}
		if ts.Before(globalMin) {
			globalMin = ts
		}
	}
	windowStart := referenceDate.AddDate(0, 0, -trailingWindowDays)
	sentinelDays := wholeDays(globalMin, referenceDate) + 1

	type activity struct {
		first        time.Time
		last         time.Time
		lastCredit   time.Time
		hasCredit    bool
		totalCredit  float64
		recentCredit float64
	}

	byCustomer := make(map[string]*activity)
	for i := range txns {
		t := &txns[i]
		act := byCustomer[t.CustomerID]
		if act == nil {
			act = &activity{first: t.Timestamp, last: t.Timestamp}
			byCustomer[t.CustomerID] = act
		} else {
			if t.Timestamp.Before(act.first) {
				act.first = t.Timestamp
			}
			if t.Timestamp.After(act.last) {
				act.last = t.Timestamp
			}
		}
		if t.Amount > 0 {
			act.totalCredit += t.Amount
			if !act.hasCredit || t.Timestamp.After(act.lastCredit) {
				act.lastCredit = t.Timestamp
				act.hasCredit = true
			}
			if !t.Timestamp.Before(windowStart) {
				act.recentCredit += t.Amount
			}
		}
	}

	temporal := make(map[string]TemporalFeatures, len(byCustomer))
	for customerID, act := range byCustomer {
		f := TemporalFeatures{DaysSinceLastCredit: sentinelDays}
		if act.hasCredit {
			f.DaysSinceLastCredit = wholeDays(act.lastCredit, referenceDate)
		}

		// The +1 keeps a single-day history from yielding a zero-day span;
		// the floor of one month keeps short histories from inflating the ratio.
		monthsActive := (float64(wholeDays(act.first, act.last)) + 1) / daysPerMonth
		if monthsActive < 1.0 {
			monthsActive = 1.0
		}
		avgMonthlyCredit := act.totalCredit / monthsActive
		if avgMonthlyCredit > 0 {
			ratio := act.recentCredit / avgMonthlyCredit
			f.IncomeStabilityRatio = &ratio
		}
		temporal[customerID] = f
	}
	return temporal
}

// wholeDays returns the number of whole days from a to b, for b >= a.
func wholeDays(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
