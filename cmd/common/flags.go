// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/assistant"
	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ParseAmountFlag parses a money flag. Empty values are a validation error.
func ParseAmountFlag(name, value string) (decimal.Decimal, error) {
	amount, err := models.ParseAmount(value)
	if err != nil {
		return decimal.Zero, apperror.NewValidationError(name, value, err)
	}
	return amount, nil
}

// OptionalAmountFlag parses a money flag only when it was set on the command line.
func OptionalAmountFlag(cmd *cobra.Command, name, value string) (*decimal.Decimal, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	amount, err := ParseAmountFlag(name, value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// ParseToneFlag parses the --tone flag.
func ParseToneFlag(value string) (models.Tone, error) {
	tone, err := models.ParseTone(value)
	if err != nil {
		return "", apperror.NewValidationError("tone", value, err)
	}
	return tone, nil
}

// PrintFeedback writes assistant feedback, one line per message.
func PrintFeedback(w io.Writer, feedback assistant.Feedback) {
	for _, line := range feedback.Lines {
		fmt.Fprintln(w, line)
	}
}

// ToneNames lists the supported tones for flag usage strings.
func ToneNames() string {
	names := make([]string, 0, len(models.Tones()))
	for _, tone := range models.Tones() {
		names = append(names, string(tone))
	}
	return strings.Join(names, ", ")
}
