package csv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/logger"
)

func TestLabelReader(t *testing.T) {
	ctx := context.Background()

	t.Run("loads labels keyed by customer", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"customer_id,defaulted_within_90d\n"+
			"1,0\n"+
			"2,1\n"+
			"42,0\n")

		labels, err := NewLabelReader(path, logger.NewNoopLogger()).LoadLabels(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"1": 0, "2": 1, "42": 0}, labels)
	})

	t.Run("missing column is a fatal schema error", func(t *testing.T) {
		path := writeTempCSV(t, "customer_id\n1\n")

		_, err := NewLabelReader(path, logger.NewNoopLogger()).LoadLabels(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrMissingColumn)
		assert.True(t, errs.IsFatal(err))
	})

	t.Run("label values other than 0 and 1 fail the load", func(t *testing.T) {
		path := writeTempCSV(t, ""+
			"customer_id,defaulted_within_90d\n"+
			"1,maybe\n")

		_, err := NewLabelReader(path, logger.NewNoopLogger()).LoadLabels(ctx)
		assert.ErrorIs(t, err, errs.ErrInvalidLabel)
	})

	t.Run("empty table yields an empty map", func(t *testing.T) {
		path := writeTempCSV(t, "customer_id,defaulted_within_90d\n")

		labels, err := NewLabelReader(path, logger.NewNoopLogger()).LoadLabels(ctx)
		require.NoError(t, err)
		assert.Empty(t, labels)
	})
}
