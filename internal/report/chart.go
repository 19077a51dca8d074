package report

import (
	"fmt"
	"strings"

	"fjacquet/finbot/internal/analytics"

	"github.com/shopspring/decimal"
)

// ChartWidth is the bar length of a 100% share.
const ChartWidth = 40

const barRune = "█"

var (
	chartScale = decimal.NewFromInt(ChartWidth)
	hundred    = decimal.NewFromInt(100)
)

// RenderChart draws the category shares of the month as horizontal bars labelled with
// the rounded percentage. Shares keep their first-encountered order.
func (g *Generator) RenderChart(shares []analytics.CategoryShare) string {
	if len(shares) == 0 {
		return "No spending this month to show chart.\n"
	}

	labelWidth := 0
	for _, s := range shares {
		if n := len(s.Category.String()); n > labelWidth {
			labelWidth = n
		}
	}

	var b strings.Builder
	b.WriteString("--- Spending by category (this month) ---\n")
	for _, s := range shares {
		fmt.Fprintf(&b, "%-*s %s %s%%\n", labelWidth, s.Category, bar(s), s.Percent.StringFixed(1))
	}
	return b.String()
}

func bar(s analytics.CategoryShare) string {
	cells := s.Percent.Mul(chartScale).Div(hundred).Round(0).IntPart()
	if cells == 0 && s.Count > 0 {
		cells = 1
	}
	return strings.Repeat(barRune, int(cells))
}
