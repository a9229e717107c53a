package features

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/error"
)

// Matcher is a whole-word containment predicate compiled from one
// category's keyword list. The same predicate serves every category; only
// the keyword lists differ.
type Matcher struct {
	name string
	re   *regexp.Regexp
}

// NewMatcher compiles a category rule into a single word-boundary
// alternation. Multi-word keywords match across flexible internal
// whitespace, so "amazon   prime" still triggers "amazon prime".
func NewMatcher(rule entity.CategoryRule) (*Matcher, error) {
	if rule.Name == "" || len(rule.Keywords) == 0 {
		return nil, fmt.Errorf("%w: category %q needs a name and at least one keyword", errs.ErrInvalidCategoryRule, rule.Name)
	}

	alternatives := make([]string, 0, len(rule.Keywords))
	for _, keyword := range rule.Keywords {
		keyword = strings.TrimSpace(strings.ToLower(keyword))
		if keyword == "" {
			return nil, fmt.Errorf("%w: category %q has an empty keyword", errs.ErrInvalidCategoryRule, rule.Name)
		}
		words := strings.Fields(keyword)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alternatives = append(alternatives, strings.Join(words, `\s+`))
	}

	re, err := regexp.Compile(`\b(?:` + strings.Join(alternatives, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("%w: category %q: %s", errs.ErrInvalidCategoryRule, rule.Name, err.Error())
	}

	return &Matcher{name: rule.Name, re: re}, nil
}

// Name returns the category name this matcher was compiled for
func (m *Matcher) Name() string {
	return m.name
}

// Matches reports whether the normalized description contains at least one
// of the category's keywords as a whole word. "bet" does not match inside
// "basketball".
func (m *Matcher) Matches(cleanDescription string) bool {
	return m.re.MatchString(cleanDescription)
}

// Classifier evaluates every configured category rule over a transaction
// set. Categories are independent; a transaction may match zero, one, or
// several of them.
type Classifier struct {
	matchers []*Matcher
}

// NewClassifier compiles the configured category rules
func NewClassifier(rules []entity.CategoryRule) (*Classifier, error) {
	matchers := make([]*Matcher, 0, len(rules))
	for _, rule := range rules {
		m, err := NewMatcher(rule)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return &Classifier{matchers: matchers}, nil
}

// NormalizeAndClassify canonicalizes every description once and records
// each transaction's category matches. Runs before any reducer so the
// matching work is not repeated per feature.
func (c *Classifier) NormalizeAndClassify(txns []entity.Transaction) []entity.NormalizedTransaction {
	normalized := make([]entity.NormalizedTransaction, 0, len(txns))
	for _, t := range txns {
		clean := Normalize(t.Description)
		categories := make(map[string]bool, len(c.matchers))
		for _, m := range c.matchers {
			categories[m.Name()] = m.Matches(clean)
		}
		normalized = append(normalized, entity.NormalizedTransaction{
			Transaction:      t,
			CleanDescription: clean,
			Categories:       categories,
		})
	}
	return normalized
}
