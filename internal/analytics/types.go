package analytics

import (
	"time"

	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
)

// Tier is a budget-usage band derived from the percent of the monthly budget spent.
type Tier int

// Budget-usage tiers, in increasing order of spending.
const (
	TierNone Tier = iota // no data, tiering skipped
	TierWellUnder
	TierModerate
	TierApproaching
	TierOver
)

var tierNames = map[Tier]string{
	TierNone:        "none",
	TierWellUnder:   "well_under",
	TierModerate:    "moderate",
	TierApproaching: "approaching",
	TierOver:        "over",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the tier by name in JSON and YAML output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Tiers lists the tiers that a non-empty report can carry.
func Tiers() []Tier {
	return []Tier{TierWellUnder, TierModerate, TierApproaching, TierOver}
}

// Badge is awarded for a discipline streak.
type Badge int

// Streak badges
const (
	BadgeNone Badge = iota
	BadgeThreeDay
	BadgeSevenDay
)

// Streak lengths that unlock a badge
const (
	ThreeDayStreak = 3
	SevenDayStreak = 7
)

func (b Badge) String() string {
	switch b {
	case BadgeThreeDay:
		return "3-day streak"
	case BadgeSevenDay:
		return "7-day discipline"
	default:
		return "none"
	}
}

// MarshalText renders the badge by name in JSON and YAML output.
func (b Badge) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	Category models.Category
	Count    int
	Amount   decimal.Decimal
}

// CategoryShare is a category's share of the month's transaction count.
type CategoryShare struct {
	Category models.Category
	Count    int
	Percent  decimal.Decimal
}

// Report holds every figure derived from one analysis run.
// When Empty is set the history had no transactions and only ReferenceDate,
// MonthlyBudget, DailyLimit and Remaining are filled in.
type Report struct {
	ReferenceDate time.Time
	Empty         bool

	MonthlyBudget decimal.Decimal
	DailyLimit    decimal.Decimal

	MonthTransactionCount int
	TotalSpent            decimal.Decimal
	Remaining             decimal.Decimal
	Percent               decimal.Decimal
	Tier                  Tier

	TopCategories  []CategoryTotal
	TopCategory    models.Category
	HasTopCategory bool
	Suggestion     string

	Streak int
	Badge  Badge
}
