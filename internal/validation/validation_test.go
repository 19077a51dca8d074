package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{format: "", wantErr: false},
		{format: "text", wantErr: false},
		{format: "JSON", wantErr: false},
		{format: "yaml", wantErr: false},
		{format: "yml", wantErr: false},
		{format: "xml", wantErr: true},
		{format: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := IsValidOutputFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "text, json, yaml")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidOutputPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.csv")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0600))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "new file", path: filepath.Join(dir, "new.csv")},
		{name: "existing file", path: existing},
		{name: "missing parent", path: filepath.Join(dir, "nested", "out.csv")},
		{name: "empty", path: "  ", wantErr: true},
		{name: "directory", path: dir, wantErr: true},
		{name: "parent is a file", path: filepath.Join(existing, "out.csv"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsValidOutputPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
