// Package report renders an analytics report as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/finbot/internal/analytics"
	"fjacquet/finbot/internal/dateutils"
	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the formats accepted by Render.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// CategoryLine is one entry of the top categories in a Summary.
type CategoryLine struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
	Amount   string `json:"amount" yaml:"amount"`
}

// Summary is the machine-readable form of a report. Amounts are fixed two-decimal strings.
type Summary struct {
	ReferenceDate    string         `json:"reference_date" yaml:"reference_date"`
	Empty            bool           `json:"empty" yaml:"empty"`
	MonthlyBudget    string         `json:"monthly_budget" yaml:"monthly_budget"`
	DailyLimit       string         `json:"daily_limit" yaml:"daily_limit"`
	TransactionCount int            `json:"month_transaction_count" yaml:"month_transaction_count"`
	TotalSpent       string         `json:"total_spent" yaml:"total_spent"`
	Remaining        string         `json:"remaining" yaml:"remaining"`
	Percent          string         `json:"percent" yaml:"percent"`
	Tier             string         `json:"tier" yaml:"tier"`
	TopCategories    []CategoryLine `json:"top_categories" yaml:"top_categories"`
	TopCategory      string         `json:"top_category,omitempty" yaml:"top_category,omitempty"`
	Suggestion       string         `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Streak           int            `json:"streak" yaml:"streak"`
	Badge            string         `json:"badge" yaml:"badge"`
}

// NewSummary converts a report.
func NewSummary(r analytics.Report) Summary {
	s := Summary{
		ReferenceDate:    dateutils.ToISODate(r.ReferenceDate),
		Empty:            r.Empty,
		MonthlyBudget:    r.MonthlyBudget.StringFixed(2),
		DailyLimit:       r.DailyLimit.StringFixed(2),
		TransactionCount: r.MonthTransactionCount,
		TotalSpent:       r.TotalSpent.StringFixed(2),
		Remaining:        r.Remaining.StringFixed(2),
		Percent:          r.Percent.StringFixed(2),
		Tier:             r.Tier.String(),
		TopCategories:    make([]CategoryLine, 0, len(r.TopCategories)),
		Streak:           r.Streak,
		Badge:            r.Badge.String(),
	}
	for _, c := range r.TopCategories {
		s.TopCategories = append(s.TopCategories, CategoryLine{
			Category: c.Category.String(),
			Count:    c.Count,
			Amount:   c.Amount.StringFixed(2),
		})
	}
	if r.HasTopCategory {
		s.TopCategory = r.TopCategory.String()
		s.Suggestion = r.Suggestion
	}
	return s
}

// Generator renders reports.
type Generator struct {
	currencySymbol string
	logger         logging.Logger
}

// NewGenerator creates a Generator that prefixes text amounts with currencySymbol.
func NewGenerator(currencySymbol string, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Generator{
		currencySymbol: currencySymbol,
		logger:         logger.WithField(logging.FieldComponent, "ReportGenerator"),
	}
}

// Render renders the report in the given format.
func (g *Generator) Render(r analytics.Report, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return []byte(g.renderText(r)), nil
	case FormatJSON:
		return g.renderJSON(r)
	case FormatYAML, "yml":
		return g.renderYAML(r)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(r analytics.Report) ([]byte, error) {
	out, err := json.MarshalIndent(NewSummary(r), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) renderYAML(r analytics.Report) ([]byte, error) {
	out, err := yaml.Marshal(NewSummary(r))
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

// Amount formats an amount with the generator's currency symbol.
func (g *Generator) Amount(amount decimal.Decimal) string {
	return models.FormatAmount(amount, g.currencySymbol)
}

func (g *Generator) renderText(r analytics.Report) string {
	if r.Empty {
		return "No transactions yet.\n"
	}

	var b strings.Builder
	b.WriteString("--- Monthly Summary ---\n")
	fmt.Fprintf(&b, "Total spent this month: %s\n", g.Amount(r.TotalSpent))
	fmt.Fprintf(&b, "Remaining budget: %s\n", g.Amount(r.Remaining))
	if len(r.TopCategories) > 0 {
		b.WriteString("Top 3 categories:\n")
		for _, c := range r.TopCategories {
			fmt.Fprintf(&b, "  %s: %s\n", c.Category, g.Amount(c.Amount))
		}
	}
	fmt.Fprintf(&b, "Discipline streak: %d day(s)\n", r.Streak)
	b.WriteString("-----------------------\n")
	return b.String()
}
