package categorizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"
	"fjacquet/finbot/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize_DefaultRules(t *testing.T) {
	c := NewCategorizer(nil, nil)

	tests := []struct {
		description string
		expected    models.Category
	}{
		{"Lunch at restaurant", models.CategoryFood},
		{"COFFEE beans", models.CategoryFood},
		{"Netflix subscription", models.CategoryEntertainment},
		{"Concert tickets", models.CategoryEntertainment},
		{"Taxi home", models.CategoryTransport},
		{"Fuel refill", models.CategoryTransport},
		{"Amazon order", models.CategoryShopping},
		{"Weekend at the mall", models.CategoryShopping},
		{"Rent", models.CategoryOther},
		{"", models.CategoryOther},
		{"   ", models.CategoryOther},
		// Declaration order: food is checked before transport.
		{"Uber ride to Pizza Hut", models.CategoryFood},
		// Entertainment before transport: "game" wins over "bus".
		{"Bus to the game", models.CategoryEntertainment},
		// Substring matching: "busy" contains "bus".
		{"Busy day", models.CategoryTransport},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Categorize(tt.description))
		})
	}
}

func TestCategorize_FallbackIffNoKeywordMatches(t *testing.T) {
	c := NewCategorizer(nil, nil)
	descriptions := []string{
		"Uber ride", "groceries", "pizza night", "electricity bill", "MALL", "train pass", "gift",
	}

	for _, desc := range descriptions {
		anyMatch := false
		for _, rule := range c.Rules() {
			for _, k := range rule.Keywords {
				if strings.Contains(strings.ToLower(desc), k) {
					anyMatch = true
				}
			}
		}
		assert.Equal(t, !anyMatch, c.Categorize(desc).IsFallback(), desc)
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	c := NewCategorizer(nil, nil)
	first := c.Categorize("Uber ride to Pizza Hut")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Categorize("Uber ride to Pizza Hut"))
	}
}

func TestCategorize_LogsMatchedKeyword(t *testing.T) {
	logger := logging.NewMockLogger()
	c := NewCategorizer(nil, logger)

	c.Categorize("Movie night")

	entries := logger.GetEntriesByLevel("DEBUG")
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "Transaction categorized using keyword matching", last.Message)
	assert.Contains(t, last.Fields, logging.F(logging.FieldKeyword, "movie"))
}

func TestNewCategorizer_StoreRules(t *testing.T) {
	mock := &store.MockCategoryStore{
		Categories: []models.CategoryConfig{
			{Name: "transport", Keywords: []string{"uber"}},
			{Name: "food", Keywords: []string{"pizza"}},
		},
	}

	c := NewCategorizer(mock, nil)
	assert.Equal(t, "file", c.Source())
	// File order puts transport first.
	assert.Equal(t, models.CategoryTransport, c.Categorize("Uber ride to Pizza Hut"))
	// Built-in keywords are replaced, not merged.
	assert.Equal(t, models.CategoryOther, c.Categorize("Netflix"))
}

func TestNewCategorizer_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name  string
		store CategoryStoreInterface
	}{
		{"nil store", nil},
		{"empty store", &store.MockCategoryStore{}},
		{"load error", &store.MockCategoryStore{LoadCategoriesError: errors.New("boom")}},
		{"only fallback rules", &store.MockCategoryStore{Categories: []models.CategoryConfig{
			{Name: "other", Keywords: []string{"misc"}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCategorizer(tt.store, nil)
			assert.Equal(t, "default", c.Source())
			assert.Equal(t, DefaultRules(), c.Rules())
		})
	}
}

func TestNewCategorizer_LoadErrorIsLogged(t *testing.T) {
	logger := logging.NewMockLogger()
	NewCategorizer(&store.MockCategoryStore{LoadCategoriesError: errors.New("boom")}, logger)
	assert.True(t, logger.HasEntry("WARN", "Failed to load categories, using built-in rules"))
}

func TestNewCategorizer_YAMLFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`categories:
  - name: transport
    keywords: [Uber]
  - name: food
    keywords: [pizza]
`), 0600))

	c := NewCategorizer(store.NewCategoryStore(file, nil), nil)
	assert.Equal(t, models.CategoryTransport, c.Categorize("Uber ride to Pizza Hut"))
	assert.Equal(t, models.CategoryFood, c.Categorize("pizza"))
}

func TestRules_ReturnsCopy(t *testing.T) {
	c := NewCategorizer(nil, nil)
	rules := c.Rules()
	rules[0].Keywords[0] = "changed"
	assert.Equal(t, "restaurant", c.Rules()[0].Keywords[0])
}

func TestNewWithRules(t *testing.T) {
	c := NewWithRules([]KeywordRule{{Category: "travel", Keywords: []string{"hotel"}}}, nil)
	assert.Equal(t, "custom", c.Source())
	assert.Equal(t, models.Category("travel"), c.Categorize("Hotel booking"))
}
