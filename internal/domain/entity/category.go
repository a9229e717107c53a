package entity

// Canonical category names. The keyword lists behind them are
// configuration (see infrastructure/config), not part of the domain.
const (
	CategorySalaryLike   = "salary_like"
	CategoryRisky        = "risky"
	CategoryHousing      = "housing"
	CategorySubscription = "subscription"
)

// CategoryRule maps a category name to the keywords that trigger it.
// Keywords match as whole words; multi-word keywords match with flexible
// internal whitespace.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
