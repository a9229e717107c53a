package entity

// FeatureColumns is the fixed column order of the output artifact.
var FeatureColumns = []string{
	"customer_id",
	"txn_count",
	"total_debit",
	"total_credit",
	"avg_amount",
	"debit_to_credit_ratio",
	"days_since_last_credit",
	"income_stability_ratio",
	"flag_consistent_salary",
	"flag_risky_spend",
	"flag_rent_mortgage",
	"flag_subscription",
	"defaulted_within_90d",
}

// CustomerFeatureRecord is one fully computed feature row for a customer
// present in the transaction set. Ratio fields are nil when their
// denominator policy says "undefined"; the label is nil when the customer
// has no row in the label table. Records are created once per run and
// never mutated afterwards.
type CustomerFeatureRecord struct {
	CustomerID           string
	TxnCount             int
	TotalDebit           float64 // sum of negative amounts, <= 0
	TotalCredit          float64 // sum of positive amounts, >= 0
	AvgAmount            float64
	DebitToCreditRatio   *float64 // nil when TotalCredit == 0
	DaysSinceLastCredit  int
	IncomeStabilityRatio *float64 // nil when lifetime monthly credit is 0
	FlagConsistentSalary int
	FlagRiskySpend       int
	FlagRentMortgage     int
	FlagSubscription     int
	DefaultedWithin90d   *int // nil when the customer has no label
}
