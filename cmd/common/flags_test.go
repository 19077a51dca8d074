package common

import (
	"bytes"
	"testing"

	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/assistant"
	"fjacquet/finbot/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain", value: "250", want: "250"},
		{name: "decimal", value: "12.50", want: "12.5"},
		{name: "rupee symbol", value: "₹1,200", want: "1200"},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountFlag("amount", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOptionalAmountFlag(t *testing.T) {
	var value string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&value, "budget", "", "")

	got, err := OptionalAmountFlag(cmd, "budget", value)
	require.NoError(t, err)
	assert.Nil(t, got, "unset flag yields nil")

	require.NoError(t, cmd.Flags().Set("budget", "3000"))
	got, err = OptionalAmountFlag(cmd, "budget", value)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "3000", got.String())

	require.NoError(t, cmd.Flags().Set("budget", "abc"))
	_, err = OptionalAmountFlag(cmd, "budget", value)
	assert.True(t, apperror.IsValidation(err))
}

func TestParseToneFlag(t *testing.T) {
	tone, err := ParseToneFlag("Funny")
	require.NoError(t, err)
	assert.Equal(t, models.ToneFunny, tone)

	_, err = ParseToneFlag("sarcastic")
	assert.True(t, apperror.IsValidation(err))
}

func TestPrintFeedback(t *testing.T) {
	var buf bytes.Buffer
	PrintFeedback(&buf, assistant.Feedback{Lines: []string{"one", "two"}})
	assert.Equal(t, "one\ntwo\n", buf.String())
}

func TestToneNames(t *testing.T) {
	assert.Equal(t, "serious, friendly, funny", ToneNames())
}
