// Package store loads and saves the keyword rules used by the categorizer.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"

	"gopkg.in/yaml.v3"
)

// ErrRulesNotFound is returned by FindConfigFile when no rules file exists.
var ErrRulesNotFound = errors.New("categories file not found")

// CategoryStore manages loading and saving of keyword rules
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a new store for the given categories file
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

func (s *CategoryStore) filename() string {
	if s.CategoriesFile == "" {
		return "categories.yaml"
	}
	return s.CategoriesFile
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config/ and $HOME/.config/finbot/.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", ErrRulesNotFound
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "finbot", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", ErrRulesNotFound
}

// LoadCategories loads keyword rules from the YAML file, in file order.
// A missing file yields no rules and no error.
//
// Three layouts are accepted:
//
//	categories:            - name: food           food:
//	  - name: food           keywords: [pizza]      - pizza
//	    keywords: [pizza]
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filePath, err := s.FindConfigFile(s.filename())
	if err != nil {
		s.logger.Debug("Categories file not found, using built-in rules",
			logging.F(logging.FieldFile, s.filename()))
		return []models.CategoryConfig{}, nil
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- user-selected rules file
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	categories, err := parseCategories(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}

	s.logger.Debug("Loaded categories",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(categories)))
	return categories, nil
}

func parseCategories(data []byte) ([]models.CategoryConfig, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return []models.CategoryConfig{}, nil
	}
	doc := root.Content[0]

	switch doc.Kind {
	case yaml.SequenceNode:
		var categories []models.CategoryConfig
		if err := doc.Decode(&categories); err != nil {
			return nil, err
		}
		return normalize(categories), nil

	case yaml.MappingNode:
		var wrapped models.CategoriesConfig
		if err := doc.Decode(&wrapped); err == nil && len(wrapped.Categories) > 0 {
			return normalize(wrapped.Categories), nil
		}
		return parseKeywordMap(doc)
	}

	return nil, fmt.Errorf("unexpected YAML layout")
}

// parseKeywordMap reads the "name: [keywords]" layout, keeping document order.
func parseKeywordMap(doc *yaml.Node) ([]models.CategoryConfig, error) {
	categories := make([]models.CategoryConfig, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		var keywords []string
		if err := doc.Content[i+1].Decode(&keywords); err != nil {
			return nil, fmt.Errorf("category %q: %w", doc.Content[i].Value, err)
		}
		categories = append(categories, models.CategoryConfig{
			Name:     doc.Content[i].Value,
			Keywords: keywords,
		})
	}
	return normalize(categories), nil
}

// normalize lowercases names and keywords and drops blank keywords.
func normalize(categories []models.CategoryConfig) []models.CategoryConfig {
	out := make([]models.CategoryConfig, 0, len(categories))
	for _, c := range categories {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		keywords := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		out = append(out, models.CategoryConfig{Name: name, Keywords: keywords})
	}
	return out
}

// SaveCategories writes keyword rules to the categories file, creating parent directories.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) (string, error) {
	filePath := s.filename()
	if existing, err := s.FindConfigFile(filePath); err == nil {
		filePath = existing
	}

	if err := os.MkdirAll(filepath.Dir(filePath), models.PermissionDirectory); err != nil {
		return "", fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return "", fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(filePath, data, models.PermissionExportFile); err != nil {
		return "", fmt.Errorf("error writing categories: %w", err)
	}

	s.logger.Info("Saved categories",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(categories)))
	return filePath, nil
}
