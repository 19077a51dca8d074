package assistant

import (
	"fjacquet/finbot/internal/analytics"
	"fjacquet/finbot/internal/models"
)

type tierKey struct {
	tier analytics.Tier
	tone models.Tone
}

// tierMessages holds one message per (tier, tone). The funny over-budget entry is a
// format string taking the rounded percent.
var tierMessages = map[tierKey]string{
	{analytics.TierWellUnder, models.ToneSerious}:  "Good. Your spending is currently well under control.",
	{analytics.TierWellUnder, models.ToneFriendly}: "Awesome! You're well within your budget. Keep it going! 😊",
	{analytics.TierWellUnder, models.ToneFunny}:    "LOL, you're cruising with lots of budget left! 💸 Chill vibes only 😎",

	{analytics.TierModerate, models.ToneSerious}:  "Your expenses are moderate. Continue to be cautious.",
	{analytics.TierModerate, models.ToneFriendly}: "You're spending steadily, but still safe. Keep tracking! 😊",
	{analytics.TierModerate, models.ToneFunny}:    "Careful there! Don't turn into a broke meme just yet 😂",

	{analytics.TierApproaching, models.ToneSerious}:  "Caution: Your spending is nearing your budget limit.",
	{analytics.TierApproaching, models.ToneFriendly}: "Careful! You're getting close to your budget limit. Let's slow down a bit 😊",
	{analytics.TierApproaching, models.ToneFunny}:    "Bro... do you think money grows on trees? 🌳💸",

	{analytics.TierOver, models.ToneSerious}:  "You have exceeded your budget. Immediate expense control is advised.",
	{analytics.TierOver, models.ToneFriendly}: "You've crossed your budget 😅 Let's try to pause expenses for now.",
	{analytics.TierOver, models.ToneFunny}:    "Budget exploded! You're at %.0f%% - broke speedrun unlocked 😂",
}

var topCategoryTemplates = map[models.Tone]string{
	models.ToneSerious:  "Your main expense category is: %s.",
	models.ToneFriendly: "Heads up! You seem to be spending most on %s 😉",
	models.ToneFunny:    "Bruh, your wallet is crying because of all that %s spending 🤣",
}

var greetingFlair = map[models.Tone]string{
	models.ToneSerious:  ". Let's focus on your financial health.",
	models.ToneFriendly: " 😊 Ready to manage those finances?",
	models.ToneFunny:    " 🤣 Let's see if you're still rich!",
}

var badgeMessages = map[analytics.Badge][]string{
	analytics.BadgeSevenDay: {
		"🏆 Badge Unlocked: 7-day Spending Discipline!",
		"AI Suggestion: You've earned a small reward - enjoy a treat within ₹100 guilt-free!",
	},
	analytics.BadgeThreeDay: {
		"⭐ Badge Unlocked: 3-day Controlled Spending Streak!",
	},
}

const welcomeMessage = "Welcome! Start by adding your first transaction to see insights."
