package model

import (
	"time"
)

// CustomerFeatureRow is the database model for one assembled feature
// record. Rows are keyed by the run that produced them so successive
// training sets stay queryable side by side.
type CustomerFeatureRow struct {
	ID                   uint64 `gorm:"primaryKey;autoIncrement"`
	RunID                string `gorm:"not null;index;size:36"`
	CustomerID           string `gorm:"not null;index;size:255"`
	TxnCount             int    `gorm:"not null"`
	TotalDebit           float64
	TotalCredit          float64
	AvgAmount            float64
	DebitToCreditRatio   *float64
	DaysSinceLastCredit  int
	IncomeStabilityRatio *float64
	FlagConsistentSalary int
	FlagRiskySpend       int
	FlagRentMortgage     int
	FlagSubscription     int
	DefaultedWithin90d   *int
	CreatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for CustomerFeatureRow
func (CustomerFeatureRow) TableName() string {
	return "customer_features"
}
