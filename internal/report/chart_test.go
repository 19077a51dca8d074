package report

import (
	"strings"
	"testing"

	"fjacquet/finbot/internal/analytics"
	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChart(t *testing.T) {
	shares := []analytics.CategoryShare{
		{Category: models.CategoryFood, Count: 3, Percent: decimal.NewFromInt(75)},
		{Category: models.CategoryTransport, Count: 1, Percent: decimal.NewFromInt(25)},
	}

	out := NewGenerator("₹", nil).RenderChart(shares)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "--- Spending by category (this month) ---", lines[0])
	assert.Equal(t, "food      "+strings.Repeat("█", 30)+" 75.0%", lines[1])
	assert.Equal(t, "transport "+strings.Repeat("█", 10)+" 25.0%", lines[2])
}

func TestRenderChart_TinyShareGetsOneCell(t *testing.T) {
	shares := []analytics.CategoryShare{
		{Category: models.CategoryOther, Count: 1, Percent: decimal.RequireFromString("0.5")},
	}
	out := NewGenerator("₹", nil).RenderChart(shares)
	assert.Contains(t, out, "other █ 0.5%")
}

func TestRenderChart_Empty(t *testing.T) {
	assert.Equal(t, "No spending this month to show chart.\n", NewGenerator("₹", nil).RenderChart(nil))
}
