package export_test

import (
	"testing"

	"fjacquet/finbot/cmd/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", export.Cmd.Use)
	assert.Contains(t, export.Cmd.Short, "CSV")
	assert.Contains(t, export.Cmd.Long, "Date, Description, Amount and Category")
	assert.NotNil(t, export.Cmd.RunE)
}

func TestExportCommand_OutputFlag(t *testing.T) {
	flag := export.Cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
	assert.Contains(t, flag.Usage, "_transactions.csv")
}
