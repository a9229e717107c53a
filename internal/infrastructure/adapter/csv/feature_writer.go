package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/port/core"
)

// FeatureWriter writes the assembled feature table to a CSV file. It
// implements the FeatureSink port.
//
// Formatting is fixed so that two runs over the same input produce
// byte-identical artifacts: floats in shortest decimal notation, flags as
// 0/1, undefined ratios and missing labels as empty cells.
type FeatureWriter struct {
	path   string
	logger coreport.Logger
}

// NewFeatureWriter creates a writer targeting the given CSV file
func NewFeatureWriter(path string, logger coreport.Logger) *FeatureWriter {
	return &FeatureWriter{path: path, logger: logger}
}

// WriteFeatures writes the header and one row per feature record
func (w *FeatureWriter) WriteFeatures(ctx context.Context, runID string, records []entity.CustomerFeatureRecord) (err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create features file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close features file: %w", cerr)
		}
	}()

	writer := stdcsv.NewWriter(f)
	if err := writer.Write(entity.FeatureColumns); err != nil {
		return fmt.Errorf("write features header: %w", err)
	}

	for i := range records {
		if err := writer.Write(featureRow(&records[i])); err != nil {
			return fmt.Errorf("write features row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush features file: %w", err)
	}

	w.logger.Info("Feature table written", map[string]any{
		"run_id": runID,
		"path":   w.path,
		"rows":   len(records),
	})
	return nil
}

// featureRow renders one record in the fixed 13-column order
func featureRow(record *entity.CustomerFeatureRecord) []string {
	return []string{
		record.CustomerID,
		strconv.Itoa(record.TxnCount),
		formatFloat(record.TotalDebit),
		formatFloat(record.TotalCredit),
		formatFloat(record.AvgAmount),
		formatNullableFloat(record.DebitToCreditRatio),
		strconv.Itoa(record.DaysSinceLastCredit),
		formatNullableFloat(record.IncomeStabilityRatio),
		strconv.Itoa(record.FlagConsistentSalary),
		strconv.Itoa(record.FlagRiskySpend),
		strconv.Itoa(record.FlagRentMortgage),
		strconv.Itoa(record.FlagSubscription),
		formatNullableInt(record.DefaultedWithin90d),
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatNullableFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return formatFloat(*value)
}

func formatNullableInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
