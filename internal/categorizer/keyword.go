package categorizer

import (
	"strings"

	"fjacquet/finbot/internal/models"
)

// KeywordRule maps a category to the lowercase substrings that select it.
type KeywordRule struct {
	Category models.Category
	Keywords []string
}

// DefaultRules returns the built-in rules in declaration order.
// Order matters: the first rule with a matching keyword wins, so
// "Uber ride to Pizza Hut" is food, not transport.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{Category: models.CategoryFood, Keywords: []string{"restaurant", "cafe", "burger", "pizza", "coffee"}},
		{Category: models.CategoryEntertainment, Keywords: []string{"movie", "netflix", "game", "concert"}},
		{Category: models.CategoryTransport, Keywords: []string{"uber", "taxi", "bus", "train", "fuel"}},
		{Category: models.CategoryShopping, Keywords: []string{"amazon", "mall", "shopping"}},
	}
}

// RulesFromConfig converts YAML category entries into keyword rules, keeping file order.
// Entries for the fallback category and entries without keywords are skipped.
func RulesFromConfig(categories []models.CategoryConfig) []KeywordRule {
	rules := make([]KeywordRule, 0, len(categories))
	for _, c := range categories {
		category := models.ParseCategory(c.Name)
		if category.IsFallback() {
			continue
		}

		keywords := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			continue
		}

		rules = append(rules, KeywordRule{Category: category, Keywords: keywords})
	}
	return rules
}

// RulesToConfig is the inverse of RulesFromConfig, used when writing the rules file.
func RulesToConfig(rules []KeywordRule) []models.CategoryConfig {
	categories := make([]models.CategoryConfig, 0, len(rules))
	for _, r := range rules {
		categories = append(categories, models.CategoryConfig{
			Name:     r.Category.String(),
			Keywords: append([]string(nil), r.Keywords...),
		})
	}
	return categories
}

// matchKeyword returns the first rule and keyword contained in the lowercased description.
func matchKeyword(rules []KeywordRule, description string) (models.Category, string, bool) {
	desc := strings.ToLower(description)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, keyword) {
				return rule.Category, keyword, true
			}
		}
	}
	return models.CategoryOther, "", false
}
