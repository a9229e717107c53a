package features

import (
	"sort"
	"strconv"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
)

// AssembleFeatureRecords left-joins the partial feature maps into the
// final records: one per customer present in the transaction set, in
// deterministic customer order. Absent behavioral flags default to zero
// (absence of evidence, not missing data); an absent label stays nil.
func AssembleFeatureRecords(
	aggregates map[string]Aggregates,
	temporal map[string]TemporalFeatures,
	flags map[string]BehavioralFlags,
	labels map[string]int,
) []entity.CustomerFeatureRecord {
	customerIDs := make([]string, 0, len(aggregates))
	for customerID := range aggregates {
		customerIDs = append(customerIDs, customerID)
	}
	SortCustomerIDs(customerIDs)

	records := make([]entity.CustomerFeatureRecord, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		agg := aggregates[customerID]
		record := entity.CustomerFeatureRecord{
			CustomerID:         customerID,
			TxnCount:           agg.TxnCount,
			TotalDebit:         agg.TotalDebit,
			TotalCredit:        agg.TotalCredit,
			AvgAmount:          agg.AvgAmount,
			DebitToCreditRatio: agg.DebitToCreditRatio,
		}
		if t, ok := temporal[customerID]; ok {
			record.DaysSinceLastCredit = t.DaysSinceLastCredit
			record.IncomeStabilityRatio = t.IncomeStabilityRatio
		}
		if f, ok := flags[customerID]; ok {
			record.FlagConsistentSalary = f.ConsistentSalary
			record.FlagRiskySpend = f.RiskySpend
			record.FlagRentMortgage = f.RentMortgage
			record.FlagSubscription = f.Subscription
		}
		if label, ok := labels[customerID]; ok {
			value := label
			record.DefaultedWithin90d = &value
		}
		records = append(records, record)
	}
	return records
}

// SortCustomerIDs orders IDs numerically when they parse as integers and
// lexicographically otherwise, so repeated runs over the same input emit
// rows in the same order regardless of input row order.
func SortCustomerIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return customerIDLess(ids[i], ids[j])
	})
}

func customerIDLess(a, b string) bool {
	ai, errA := strconv.ParseInt(a, 10, 64)
	bi, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		if ai != bi {
			return ai < bi
		}
		// "007" and "7" compare equal numerically; fall through
	}
	return a < b
}
