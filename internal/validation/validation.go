// Package validation checks command arguments before any work is done.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/finbot/internal/report"
)

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "", report.FormatText, report.FormatJSON, report.FormatYAML, "yml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are %s",
			format, strings.Join(report.Formats(), ", "))
	}
}

// IsValidOutputPath checks that a file can be created at path: it must not be a
// directory and its parent, when it exists, must be one.
func IsValidOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("output path is a directory: %s", path)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("output path %s is not a regular file", path)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", parent, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("parent of %s is not a directory", path)
	}
	return nil
}
