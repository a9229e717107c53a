package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
)

// TransactionSource loads the immutable transaction snapshot the pipeline
// reduces. Implementations own the acquire/release of the underlying
// resource and must release it on every exit path.
type TransactionSource interface {
	// LoadTransactions reads the full transaction set. It fails with a
	// SchemaError if a required column is missing, before any computation.
	LoadTransactions(ctx context.Context) ([]entity.Transaction, error)
}

// LabelSource loads the default labels keyed by customer ID.
type LabelSource interface {
	// LoadLabels reads the label table. Values are 0 or 1.
	LoadLabels(ctx context.Context) (map[string]int, error)
}
