package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
)

// categoryFile is the on-disk shape of the keyword rule file
type categoryFile struct {
	Categories []entity.CategoryRule `yaml:"categories"`
}

// DefaultCategoryRules returns the compiled-in keyword categories, used
// when no rule file is configured. The shipped configs/categories.yaml
// mirrors these values.
func DefaultCategoryRules() []entity.CategoryRule {
	return []entity.CategoryRule{
		{Name: entity.CategorySalaryLike, Keywords: []string{"payroll", "salary", "dividend", "dwp", "payout", "bonus"}},
		{Name: entity.CategoryRisky, Keywords: []string{"bet", "casino", "crypto", "gambling"}},
		{Name: entity.CategoryHousing, Keywords: []string{"rent", "mortgage", "housing", "council"}},
		{Name: entity.CategorySubscription, Keywords: []string{"netflix", "amazon prime", "hulu"}},
	}
}

// LoadCategoryRules reads the category rule file, falling back to the
// compiled-in defaults when path is empty.
func LoadCategoryRules(path string) ([]entity.CategoryRule, error) {
	if path == "" {
		return DefaultCategoryRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category rules: %w", err)
	}

	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse category rules: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("%w: rule file %q defines no categories", errs.ErrInvalidCategoryRule, path)
	}
	return file.Categories, nil
}
