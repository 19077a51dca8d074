package store

import "fjacquet/finbot/internal/models"

// MockCategoryStore is an in-memory rules source for tests.
type MockCategoryStore struct {
	Categories          []models.CategoryConfig
	LoadCategoriesError error
}

// LoadCategories returns the mock categories.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}
