package register_test

import (
	"testing"

	"fjacquet/finbot/cmd/register"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCommand_Metadata(t *testing.T) {
	assert.Equal(t, "register", register.Cmd.Use)
	assert.Contains(t, register.Cmd.Short, "Register a new user")
	assert.Contains(t, register.Cmd.Long, "monthly budget")
	assert.NotNil(t, register.Cmd.RunE)
}

func TestRegisterCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		usage     string
	}{
		{name: "tone", shorthand: "t", usage: "serious, friendly, funny"},
		{name: "budget", shorthand: "b", usage: "Monthly budget"},
		{name: "daily-limit", shorthand: "d", usage: "Daily spending limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := register.Cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, "", flag.DefValue)
			assert.Contains(t, flag.Usage, tt.usage)
		})
	}
}
