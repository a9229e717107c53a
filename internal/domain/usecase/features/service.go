package features

import (
	"context"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/port/persistence"
)

// Service orchestrates one pipeline run: load the transaction and label
// snapshots, normalize and classify descriptions once, reduce the set with
// each feature component, assemble the final records, and hand them to
// every configured sink.
type Service struct {
	transactions persistence.TransactionSource
	labels       persistence.LabelSource
	sinks        []persistence.FeatureSink
	classifier   *Classifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// RunResult summarizes one completed pipeline run
type RunResult struct {
	RunID        string
	Transactions int
	Customers    int
	Labeled      int
	Duration     time.Duration
}

// NewService creates a pipeline service with its collaborators
func NewService(
	transactions persistence.TransactionSource,
	labels persistence.LabelSource,
	classifier *Classifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	sinks ...persistence.FeatureSink,
) *Service {
	return &Service{
		transactions: transactions,
		labels:       labels,
		sinks:        sinks,
		classifier:   classifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Run executes the pipeline once. The computation itself is a pure,
// terminating batch transform over the loaded snapshot; running it twice
// on the same input produces identical records.
func (s *Service) Run(ctx context.Context) (*RunResult, error) {
	runID := uuid.NewString()
	startedAt := s.timeProvider.Now()

	s.logger.Info("Pipeline run started", map[string]any{
		"run_id": runID,
	})

	txns, err := s.transactions.LoadTransactions(ctx)
	if err != nil {
		s.logger.Error("Failed to load transactions", map[string]any{
			"run_id": runID,
			"error":  err.Error(),
		})
		return nil, err
	}
	if len(txns) == 0 {
		s.logger.Error("Transaction set is empty", map[string]any{
			"run_id": runID,
		})
		return nil, errs.ErrEmptyDataset
	}

	labels, err := s.labels.LoadLabels(ctx)
	if err != nil {
		s.logger.Error("Failed to load labels", map[string]any{
			"run_id": runID,
			"error":  err.Error(),
		})
		return nil, err
	}

	normalized := s.classifier.NormalizeAndClassify(txns)
	s.logger.Debug("Descriptions normalized and classified", map[string]any{
		"run_id":       runID,
		"transactions": len(normalized),
	})

	// The three reducers are independent views over the same immutable
	// snapshot; only the assembler joins their outputs.
	aggregates := AggregateByCustomer(normalized)
	temporal := ComputeTemporalFeatures(normalized)
	flags := ComputeBehavioralFlags(normalized)
	records := AssembleFeatureRecords(aggregates, temporal, flags, labels)

	labeled := 0
	for i := range records {
		if records[i].DefaultedWithin90d != nil {
			labeled++
		}
	}

	for _, sink := range s.sinks {
		if err := sink.WriteFeatures(ctx, runID, records); err != nil {
			s.logger.Error("Failed to write feature records", map[string]any{
				"run_id": runID,
				"error":  err.Error(),
			})
			return nil, err
		}
	}

	result := &RunResult{
		RunID:        runID,
		Transactions: len(txns),
		Customers:    len(records),
		Labeled:      labeled,
		Duration:     s.timeProvider.Since(startedAt).Std(),
	}
	s.logger.Info("Pipeline run completed", map[string]any{
		"run_id":       runID,
		"transactions": result.Transactions,
		"customers":    result.Customers,
		"labeled":      result.Labeled,
		"duration_ms":  result.Duration.Milliseconds(),
	})
	return result, nil
}
