package features

import (
	"time"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
)

// salaryConsistencyThreshold is the fraction of active months that must
// contain a salary-like transaction; the boundary is inclusive.
const salaryConsistencyThreshold = 0.9

// BehavioralFlags holds the four keyword-derived binary flags for one
// customer.
type BehavioralFlags struct {
	ConsistentSalary int
	RiskySpend       int
	RentMortgage     int
	Subscription     int
}

// monthKey identifies a calendar month as a composite value rather than a
// formatted string.
type monthKey struct {
	year  int
	month time.Month
}

// ComputeBehavioralFlags buckets each customer's transactions into
// calendar months and derives the behavioral flags.
//
// The salary flag is a consistency score: the fraction of a customer's
// active months containing at least one salary-like transaction must
// reach the threshold. The remaining flags are existence checks over the
// whole history, with no bucketing.
func ComputeBehavioralFlags(txns []entity.NormalizedTransaction) map[string]BehavioralFlags {
	type observation struct {
		salaryByMonth map[monthKey]bool
		risky         bool
		housing       bool
		subscription  bool
	}

	byCustomer := make(map[string]*observation)
	for i := range txns {
		t := &txns[i]
		obs := byCustomer[t.CustomerID]
		if obs == nil {
			obs = &observation{salaryByMonth: make(map[monthKey]bool)}
			byCustomer[t.CustomerID] = obs
		}

		key := monthKey{year: t.Timestamp.Year(), month: t.Timestamp.Month()}
		if t.InCategory(entity.CategorySalaryLike) {
			obs.salaryByMonth[key] = true
		} else if _, seen := obs.salaryByMonth[key]; !seen {
			obs.salaryByMonth[key] = false
		}

		obs.risky = obs.risky || t.InCategory(entity.CategoryRisky)
		obs.housing = obs.housing || t.InCategory(entity.CategoryHousing)
		obs.subscription = obs.subscription || t.InCategory(entity.CategorySubscription)
	}

	flags := make(map[string]BehavioralFlags, len(byCustomer))
	for customerID, obs := range byCustomer {
		monthsWithSalary := 0
		for _, hasSalary := range obs.salaryByMonth {
			if hasSalary {
				monthsWithSalary++
			}
		}

		var f BehavioralFlags
		// A customer present in the transaction set has at least one
		// active month, so the ratio denominator is never zero.
		ratio := float64(monthsWithSalary) / float64(len(obs.salaryByMonth))
		if ratio >= salaryConsistencyThreshold {
			f.ConsistentSalary = 1
		}
		if obs.risky {
			f.RiskySpend = 1
		}
		if obs.housing {
			f.RentMortgage = 1
		}
		if obs.subscription {
			f.Subscription = 1
		}
		flags[customerID] = f
	}
	return flags
}
