package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/model"
)

// insertBatchSize bounds the number of rows per INSERT statement
const insertBatchSize = 500

// FeatureRepository persists assembled feature records to the feature
// store. It implements the FeatureSink port using GORM.
type FeatureRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewFeatureRepository creates a new FeatureRepository instance
func NewFeatureRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *FeatureRepository {
	return &FeatureRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Migrate creates or updates the customer_features table
func (r *FeatureRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.CustomerFeatureRow{}); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// recordToRow converts a feature record entity to a database row
func (r *FeatureRepository) recordToRow(runID string, record *entity.CustomerFeatureRecord) model.CustomerFeatureRow {
	return model.CustomerFeatureRow{
		RunID:                runID,
		CustomerID:           record.CustomerID,
		TxnCount:             record.TxnCount,
		TotalDebit:           record.TotalDebit,
		TotalCredit:          record.TotalCredit,
		AvgAmount:            record.AvgAmount,
		DebitToCreditRatio:   record.DebitToCreditRatio,
		DaysSinceLastCredit:  record.DaysSinceLastCredit,
		IncomeStabilityRatio: record.IncomeStabilityRatio,
		FlagConsistentSalary: record.FlagConsistentSalary,
		FlagRiskySpend:       record.FlagRiskySpend,
		FlagRentMortgage:     record.FlagRentMortgage,
		FlagSubscription:     record.FlagSubscription,
		DefaultedWithin90d:   record.DefaultedWithin90d,
		CreatedAt:            r.timeProvider.Now(),
	}
}

// WriteFeatures stores one run's feature records in a single batch insert
func (r *FeatureRepository) WriteFeatures(ctx context.Context, runID string, records []entity.CustomerFeatureRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]model.CustomerFeatureRow, 0, len(records))
	for i := range records {
		rows = append(rows, r.recordToRow(runID, &records[i]))
	}

	result := r.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize)
	if result.Error != nil {
		r.logger.Error("Failed to store feature records", map[string]any{
			"run_id": runID,
			"rows":   len(rows),
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Feature records stored", map[string]any{
		"run_id": runID,
		"rows":   len(rows),
	})
	return nil
}
