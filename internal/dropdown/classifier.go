// Package dropdown implements dropdown content-key handling for the admin portal.
//
// The package provides:
//   - Classifier: maps a content key and optional labels to a dropdown category
//   - FallbackProvider: contextual placeholder copy for dropdowns without options
//   - Resolver: finds option rows under both numeric and descriptive key conventions
//   - Service: content-type scoped options, container and validation lookups
package dropdown

import (
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/bankim/content-admin/internal/core/domain"
)

const (
	logFieldContentKey = "content_key"
	logFieldCategory   = "category"
	logFieldRule       = "rule"
)

// Classifier assigns exactly one category to a content key.
// It is safe for concurrent use.
type Classifier struct {
	rules  RuleSet
	logger *zerolog.Logger
}

// NewClassifier creates a classifier over the given rules.
func NewClassifier(rules RuleSet, logger *zerolog.Logger) *Classifier {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Classifier{rules: rules, logger: logger}
}

// Classify returns the category of the first rule matching the content key
// joined with any non-empty label hints. Unmatched input yields generic.
func (c *Classifier) Classify(contentKey string, hints ...string) domain.Category {
	text := SearchText(contentKey, hints...)

	rule, ok := c.rules.Match(text)
	if !ok {
		c.logger.Warn().Str(logFieldContentKey, contentKey).Msg("no dropdown rule matched, using generic")
		ClassificationsTotal.WithLabelValues(domain.CategoryGeneric.String()).Inc()

		return domain.CategoryGeneric
	}

	c.logger.Debug().
		Str(logFieldContentKey, contentKey).
		Str(logFieldCategory, rule.Category.String()).
		Str(logFieldRule, rule.Name).
		Msg("dropdown category detected")
	ClassificationsTotal.WithLabelValues(rule.Category.String()).Inc()

	return rule.Category
}

// SearchText joins the key and non-empty hints with single spaces and
// case-folds the result.
func SearchText(contentKey string, hints ...string) string {
	parts := make([]string, 0, len(hints)+1)

	if contentKey != "" {
		parts = append(parts, contentKey)
	}

	for _, hint := range hints {
		if hint != "" {
			parts = append(parts, hint)
		}
	}

	// cases.Caser keeps state, so each call gets its own.
	return cases.Fold().String(strings.Join(parts, " "))
}
