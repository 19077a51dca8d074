package models

import (
	"time"

	"fjacquet/finbot/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded expense. It is never edited once stored: the category
// is bound when the transaction is created and is not recomputed afterwards.
type Transaction struct {
	ID          int64
	UserID      int64
	Date        time.Time // calendar day at midnight UTC
	Description string
	Amount      decimal.Decimal
	Category    Category
}

// NewTransaction builds a transaction for the given day. The time of day is discarded.
func NewTransaction(userID int64, date time.Time, description string, amount decimal.Decimal, category Category) Transaction {
	return Transaction{
		UserID:      userID,
		Date:        dateutils.Day(date),
		Description: description,
		Amount:      amount,
		Category:    category,
	}
}

// DateString returns the transaction day in ISO layout.
func (t Transaction) DateString() string {
	return dateutils.ToISODate(t.Date)
}

// ParseDay parses an ISO date (YYYY-MM-DD) into a calendar day.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
