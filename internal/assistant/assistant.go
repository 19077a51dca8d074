// Package assistant turns an analytics report into advisory text in the user's tone.
// The tone only selects wording; it never changes a figure.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/finbot/internal/analytics"
	"fjacquet/finbot/internal/models"
)

// Feedback is the ordered list of lines the assistant has to say about a report.
type Feedback struct {
	Tone  models.Tone
	Lines []string
}

// String joins the lines with newlines.
func (f Feedback) String() string {
	return strings.Join(f.Lines, "\n")
}

// Welcome is the onboarding prompt shown for an empty history.
func Welcome() string {
	return welcomeMessage
}

// TierMessage returns the message for a tier in the given tone. Unknown tones read as
// the default tone; TierNone yields the welcome prompt.
func TierMessage(tier analytics.Tier, tone models.Tone, percent float64) string {
	if tier == analytics.TierNone {
		return welcomeMessage
	}
	msg := tierMessages[tierKey{tier, tone.OrDefault()}]
	if tier == analytics.TierOver && tone.OrDefault() == models.ToneFunny {
		return fmt.Sprintf(msg, percent)
	}
	return msg
}

// TopCategoryMessage names the top category in the given tone.
func TopCategoryMessage(category models.Category, tone models.Tone) string {
	return fmt.Sprintf(topCategoryTemplates[tone.OrDefault()], category)
}

// BadgeMessages returns the lines announcing a badge, none for analytics.BadgeNone.
func BadgeMessages(badge analytics.Badge) []string {
	return append([]string(nil), badgeMessages[badge]...)
}

// TimeOfDay returns "Good Morning" before noon, "Good Afternoon" before 18:00 and
// "Good Evening" otherwise.
func TimeOfDay(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// Greeting welcomes a user back.
func Greeting(username string, tone models.Tone, now time.Time) string {
	return fmt.Sprintf("%s, %s!%s", TimeOfDay(now), username, greetingFlair[tone.OrDefault()])
}

// Advise builds the feedback for a report: the tier message (or the welcome prompt
// for an empty history), the top category and its suggestion, then any badge.
func Advise(report analytics.Report, tone models.Tone) Feedback {
	tone = tone.OrDefault()
	feedback := Feedback{Tone: tone}

	if report.Empty {
		feedback.Lines = []string{welcomeMessage}
		return feedback
	}

	percent, _ := report.Percent.Float64()
	feedback.Lines = append(feedback.Lines, TierMessage(report.Tier, tone, percent))

	if report.HasTopCategory {
		feedback.Lines = append(feedback.Lines,
			TopCategoryMessage(report.TopCategory, tone),
			"Suggestion: "+report.Suggestion)
	}

	feedback.Lines = append(feedback.Lines, BadgeMessages(report.Badge)...)
	return feedback
}
