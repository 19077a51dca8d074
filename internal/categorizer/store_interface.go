package categorizer

import "fjacquet/finbot/internal/models"

// CategoryStoreInterface defines where keyword rules come from.
// This allows for dependency injection and easier testing.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}
