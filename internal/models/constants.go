package models

// Categories
const (
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

// Tones
const (
	ToneSerious  Tone = "serious"
	ToneFriendly Tone = "friendly"
	ToneFunny    Tone = "funny"
)

// DefaultTone is used when a user has no stored or recognizable tone.
const DefaultTone = ToneFriendly

// DefaultMonthlyBudget applies when a user record carries no budget.
const DefaultMonthlyBudget = "5000"

// DailyLimitDivisor derives a daily limit from the monthly budget when none is set.
const DailyLimitDivisor = 30

// DateLayout is the storage and export layout for transaction dates.
const DateLayout = "2006-01-02"

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
