// Package analytics derives budget figures, category rankings and the discipline
// streak from a user's transaction history. Every call recomputes from scratch.
package analytics

import (
	"sort"
	"time"

	"fjacquet/finbot/internal/dateutils"
	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
)

// TopCategoryCount is the size of the category breakdown in a report.
const TopCategoryCount = 3

var (
	hundred       = decimal.NewFromInt(100)
	moderateFrom  = decimal.NewFromInt(50)
	approachFrom  = decimal.NewFromInt(80)
	overFrom      = decimal.NewFromInt(100)
	defaultAdvice = "Consider balancing your expenses."
)

var suggestions = map[models.Category]string{
	models.CategoryFood:          "Try cooking at home a bit more to save money!",
	models.CategoryEntertainment: "Consider swapping a movie out for a walk outside.",
	models.CategoryTransport:     "Maybe carpool or use public transport more often?",
	models.CategoryShopping:      "Do you really need that next item? 🛍",
	models.CategoryOther:         "Review miscellaneous expenses, small leaks sink big ships.",
}

// Engine computes reports. It holds no state besides its logger.
type Engine struct {
	logger logging.Logger
}

// NewEngine creates an Engine.
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{logger: logger}
}

// Analyze builds the report for history as of today using the given budget.
// History may be in any order; it is only read.
func (e *Engine) Analyze(history []models.Transaction, budget models.BudgetConfig, today time.Time) Report {
	today = dateutils.Day(today)
	report := Report{
		ReferenceDate: today,
		MonthlyBudget: budget.MonthlyBudget,
		DailyLimit:    budget.EffectiveDailyLimit(),
		Remaining:     budget.MonthlyBudget,
	}

	if len(history) == 0 {
		report.Empty = true
		e.logger.Debug("No transactions, skipping analysis")
		return report
	}

	window := MonthlyWindow(history, today)
	report.MonthTransactionCount = len(window)
	report.TotalSpent = TotalSpent(window)
	report.Remaining = budget.MonthlyBudget.Sub(report.TotalSpent)
	report.Percent = Percent(report.TotalSpent, budget.MonthlyBudget)
	report.Tier = TierFor(report.TotalSpent, budget.MonthlyBudget)

	report.TopCategories = TopCategories(window, TopCategoryCount)
	if len(report.TopCategories) > 0 {
		report.TopCategory = report.TopCategories[0].Category
		report.HasTopCategory = true
		report.Suggestion = Suggestion(report.TopCategory)
	}

	report.Streak = Streak(history, report.DailyLimit, today)
	report.Badge = BadgeFor(report.Streak)

	e.logger.WithFields(
		logging.F(logging.FieldCount, report.MonthTransactionCount),
		logging.F(logging.FieldAmount, report.TotalSpent.String()),
		logging.F(logging.FieldTier, report.Tier.String()),
		logging.F(logging.FieldStreak, report.Streak),
	).Debug("Analysis complete")

	return report
}

// MonthlyWindow returns the transactions in the calendar month of today, in input order.
func MonthlyWindow(history []models.Transaction, today time.Time) []models.Transaction {
	window := make([]models.Transaction, 0, len(history))
	for _, tx := range history {
		if dateutils.SameMonth(tx.Date, today) {
			window = append(window, tx)
		}
	}
	return window
}

// TotalSpent sums the amounts as given; negative amounts reduce the total.
func TotalSpent(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

// Percent returns spent as a percentage of budget, or zero for a zero budget.
// It is rounded to DivisionPrecision digits and only used for display; tiers come from TierFor.
func Percent(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return spent.Mul(hundred).Div(budget)
}

// TierFor compares spent*100 with the budget scaled by each boundary, so a share just
// below a boundary is never rounded onto it. Each boundary belongs to the higher tier.
// A budget of zero or less has no tier above TierWellUnder.
func TierFor(spent, budget decimal.Decimal) Tier {
	if !budget.IsPositive() {
		return TierWellUnder
	}

	scaled := spent.Mul(hundred)
	switch {
	case scaled.LessThan(budget.Mul(moderateFrom)):
		return TierWellUnder
	case scaled.LessThan(budget.Mul(approachFrom)):
		return TierModerate
	case scaled.LessThan(budget.Mul(overFrom)):
		return TierApproaching
	default:
		return TierOver
	}
}

// groupByCategory counts and sums transactions per category in first-encountered order.
func groupByCategory(transactions []models.Transaction) []CategoryTotal {
	index := make(map[models.Category]int)
	var groups []CategoryTotal
	for _, tx := range transactions {
		i, ok := index[tx.Category]
		if !ok {
			i = len(groups)
			index[tx.Category] = i
			groups = append(groups, CategoryTotal{Category: tx.Category, Amount: decimal.Zero})
		}
		groups[i].Count++
		groups[i].Amount = groups[i].Amount.Add(tx.Amount)
	}
	return groups
}

// TopCategories ranks categories by transaction count, highest first, and returns
// at most n of them (all when n <= 0). Equal counts keep the order in which the
// categories first appear in transactions.
func TopCategories(transactions []models.Transaction, n int) []CategoryTotal {
	groups := groupByCategory(transactions)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// Suggestion returns the improvement tip for a category.
func Suggestion(category models.Category) string {
	if s, ok := suggestions[category]; ok {
		return s
	}
	return defaultAdvice
}

// DayTotals sums amounts per calendar day over all transactions.
func DayTotals(history []models.Transaction) map[time.Time]decimal.Decimal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, tx := range history {
		day := dateutils.Day(tx.Date)
		totals[day] = totals[day].Add(tx.Amount)
	}
	return totals
}

// Streak counts consecutive days, walking back from today, that have at least one
// transaction and a day total at or below dailyLimit. The first day failing either
// condition ends the walk. Days in earlier months count too.
func Streak(history []models.Transaction, dailyLimit decimal.Decimal, today time.Time) int {
	totals := DayTotals(history)

	streak := 0
	for day := dateutils.Day(today); ; day = dateutils.PreviousDay(day) {
		total, ok := totals[day]
		if !ok || total.GreaterThan(dailyLimit) {
			return streak
		}
		streak++
	}
}

// BadgeFor returns the badge earned by a streak.
func BadgeFor(streak int) Badge {
	switch {
	case streak >= SevenDayStreak:
		return BadgeSevenDay
	case streak >= ThreeDayStreak:
		return BadgeThreeDay
	default:
		return BadgeNone
	}
}

// CategoryShares returns each category's share of the transaction count as a percentage
// rounded to one decimal, in first-encountered order.
func CategoryShares(transactions []models.Transaction) []CategoryShare {
	if len(transactions) == 0 {
		return nil
	}

	total := decimal.NewFromInt(int64(len(transactions)))
	groups := groupByCategory(transactions)
	shares := make([]CategoryShare, 0, len(groups))
	for _, g := range groups {
		shares = append(shares, CategoryShare{
			Category: g.Category,
			Count:    g.Count,
			Percent:  decimal.NewFromInt(int64(g.Count)).Mul(hundred).Div(total).Round(1),
		})
	}
	return shares
}
