// Package categorizer assigns a spending category to a transaction description
// using ordered keyword rules. Rules come from the built-in defaults or from
// a YAML rules file.
package categorizer

import (
	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"
)

// Categorizer matches descriptions against keyword rules.
// It is safe for concurrent use once constructed; rules never change afterwards.
type Categorizer struct {
	rules  []KeywordRule
	source string
	logger logging.Logger
}

// NewCategorizer creates a Categorizer from the rules returned by store.
// A nil store, a load error or an empty rule set selects DefaultRules.
func NewCategorizer(store CategoryStoreInterface, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	c := &Categorizer{
		rules:  DefaultRules(),
		source: "default",
		logger: logger,
	}

	if store == nil {
		return c
	}

	categories, err := store.LoadCategories()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load categories, using built-in rules")
		return c
	}

	if rules := RulesFromConfig(categories); len(rules) > 0 {
		c.rules = rules
		c.source = "file"
	}

	c.logger.Debug("Categorizer ready",
		logging.F(logging.FieldComponent, c.source),
		logging.F(logging.FieldCount, len(c.rules)))
	return c
}

// NewWithRules creates a Categorizer with explicit rules, mostly for tests.
func NewWithRules(rules []KeywordRule, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Categorizer{rules: rules, source: "custom", logger: logger}
}

// Categorize returns the category of the first rule with a keyword contained in
// the lowercased description, or models.CategoryOther when nothing matches.
func (c *Categorizer) Categorize(description string) models.Category {
	category, keyword, found := matchKeyword(c.rules, description)
	if !found {
		c.logger.Debug("No keyword matched, using fallback category",
			logging.F(logging.FieldCategory, category.String()))
		return category
	}

	c.logger.WithFields(
		logging.F(logging.FieldKeyword, keyword),
		logging.F(logging.FieldCategory, category.String()),
	).Debug("Transaction categorized using keyword matching")
	return category
}

// Rules returns a copy of the active rules in evaluation order.
func (c *Categorizer) Rules() []KeywordRule {
	out := make([]KeywordRule, len(c.rules))
	for i, r := range c.rules {
		out[i] = KeywordRule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Source reports where the active rules came from: "default", "file" or "custom".
func (c *Categorizer) Source() string {
	return c.source
}
