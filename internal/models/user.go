package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tone selects the wording of assistant messages. It never changes computed figures.
type Tone string

// Tones lists every supported tone in display order.
func Tones() []Tone {
	return []Tone{ToneSerious, ToneFriendly, ToneFunny}
}

// ParseTone parses a tone name case-insensitively.
func ParseTone(value string) (Tone, error) {
	tone := Tone(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Tones() {
		if tone == known {
			return tone, nil
		}
	}
	return "", fmt.Errorf("unknown tone '%s' (expected serious, friendly or funny)", value)
}

// OrDefault returns the tone, or DefaultTone when it is not a known tone.
func (t Tone) OrDefault() Tone {
	if parsed, err := ParseTone(string(t)); err == nil {
		return parsed
	}
	return DefaultTone
}

// BudgetConfig is the single current budget setting of a user. Changing it
// replaces the previous value, so every report uses the latest figures.
type BudgetConfig struct {
	MonthlyBudget decimal.Decimal
	DailyLimit    *decimal.Decimal
}

// EffectiveDailyLimit returns the configured daily limit, or MonthlyBudget/30 when
// the limit is absent or zero.
func (b BudgetConfig) EffectiveDailyLimit() decimal.Decimal {
	if b.DailyLimit != nil && !b.DailyLimit.IsZero() {
		return *b.DailyLimit
	}
	return b.MonthlyBudget.Div(decimal.NewFromInt(DailyLimitDivisor))
}

// User is a registered finbot user.
type User struct {
	ID       int64
	Username string
	Tone     Tone
	Budget   BudgetConfig
}

// SettingsUpdate carries the settings a user wants to change; nil fields are left alone.
type SettingsUpdate struct {
	Tone          *Tone
	MonthlyBudget *decimal.Decimal
	DailyLimit    *decimal.Decimal
}

// IsEmpty reports whether the update changes nothing.
func (u SettingsUpdate) IsEmpty() bool {
	return u.Tone == nil && u.MonthlyBudget == nil && u.DailyLimit == nil
}

// Apply returns the user with the update applied.
func (u SettingsUpdate) Apply(user User) User {
	if u.Tone != nil {
		user.Tone = *u.Tone
	}
	if u.MonthlyBudget != nil {
		user.Budget.MonthlyBudget = *u.MonthlyBudget
	}
	if u.DailyLimit != nil {
		limit := *u.DailyLimit
		user.Budget.DailyLimit = &limit
	}
	return user
}
