package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"

	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/port/core"
)

const labelsTable = "labels"

// labelColumns are the required columns of the labels table
var labelColumns = []string{
	"customer_id",
	"defaulted_within_90d",
}

// LabelReader loads the default labels from a CSV file. It implements the
// LabelSource port.
type LabelReader struct {
	path   string
	logger coreport.Logger
}

// NewLabelReader creates a reader for the given CSV file
func NewLabelReader(path string, logger coreport.Logger) *LabelReader {
	return &LabelReader{path: path, logger: logger}
}

// LoadLabels reads the label table into a customer_id keyed map
func (r *LabelReader) LoadLabels(ctx context.Context) (labels map[string]int, err error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open labels file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close labels file: %w", cerr)
		}
	}()

	reader := stdcsv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read labels header: %w", err)
	}

	columns, err := columnIndex(labelsTable, header, labelColumns)
	if err != nil {
		return nil, err
	}

	labels = make(map[string]int)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read labels row %d: %w", row, err)
		}

		value := record[columns["defaulted_within_90d"]]
		switch value {
		case "0":
			labels[record[columns["customer_id"]]] = 0
		case "1":
			labels[record[columns["customer_id"]]] = 1
		default:
			return nil, fmt.Errorf("%w: row %d: %q", errs.ErrInvalidLabel, row, value)
		}
	}

	r.logger.Debug("Labels loaded", map[string]any{
		"path": r.path,
		"rows": len(labels),
	})
	return labels, nil
}
