package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
)

// FeatureSink receives the assembled feature records of one pipeline run.
// Records arrive in their final deterministic order; sinks must not
// reorder them.
type FeatureSink interface {
	WriteFeatures(ctx context.Context, runID string, records []entity.CustomerFeatureRecord) error
}
