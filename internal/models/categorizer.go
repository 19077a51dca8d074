// Package models provides the data structures used throughout the application.
package models

import "strings"

// Category is a spending label assigned to a transaction when it is recorded.
type Category string

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// IsFallback reports whether the category is the reserved "other" bucket.
func (c Category) IsFallback() bool {
	return c == CategoryOther
}

// ParseCategory normalizes a stored category name. Empty names map to the fallback category.
func ParseCategory(name string) Category {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return CategoryOther
	}
	return Category(name)
}

// CategoryConfig represents a keyword rule in the categories YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
