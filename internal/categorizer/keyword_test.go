package categorizer

import (
	"strings"
	"testing"

	"fjacquet/finbot/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules_DeclarationOrder(t *testing.T) {
	rules := DefaultRules()

	var order []models.Category
	for _, r := range rules {
		order = append(order, r.Category)
	}
	assert.Equal(t, []models.Category{
		models.CategoryFood,
		models.CategoryEntertainment,
		models.CategoryTransport,
		models.CategoryShopping,
	}, order)

	for _, r := range rules {
		for _, k := range r.Keywords {
			assert.Equal(t, strings.ToLower(k), k, "keyword %q must be lowercase", k)
		}
	}
}

func TestRulesFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		input    []models.CategoryConfig
		expected []KeywordRule
	}{
		{
			name: "keeps file order and lowercases",
			input: []models.CategoryConfig{
				{Name: "Travel", Keywords: []string{"Airline", " Hotel "}},
				{Name: "food", Keywords: []string{"pizza"}},
			},
			expected: []KeywordRule{
				{Category: "travel", Keywords: []string{"airline", "hotel"}},
				{Category: models.CategoryFood, Keywords: []string{"pizza"}},
			},
		},
		{
			name: "skips fallback category",
			input: []models.CategoryConfig{
				{Name: "other", Keywords: []string{"misc"}},
				{Name: "shopping", Keywords: []string{"mall"}},
			},
			expected: []KeywordRule{
				{Category: models.CategoryShopping, Keywords: []string{"mall"}},
			},
		},
		{
			name: "skips rules without keywords",
			input: []models.CategoryConfig{
				{Name: "empty", Keywords: []string{"", "  "}},
				{Name: "", Keywords: []string{"anything"}},
			},
			expected: []KeywordRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RulesFromConfig(tt.input))
		})
	}
}

func TestRulesToConfig_RoundTrip(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, rules, RulesFromConfig(RulesToConfig(rules)))
}

func TestMatchKeyword(t *testing.T) {
	category, keyword, found := matchKeyword(DefaultRules(), "Uber ride to Pizza Hut")
	assert.True(t, found)
	assert.Equal(t, models.CategoryFood, category)
	assert.Equal(t, "pizza", keyword)

	category, keyword, found = matchKeyword(DefaultRules(), "rent")
	assert.False(t, found)
	assert.Equal(t, models.CategoryOther, category)
	assert.Empty(t, keyword)
}
