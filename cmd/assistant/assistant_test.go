package assistant_test

import (
	"testing"

	"fjacquet/finbot/cmd/assistant"

	"github.com/stretchr/testify/assert"
)

func TestAssistantCommand_Metadata(t *testing.T) {
	assert.Equal(t, "assistant", assistant.Cmd.Use)
	assert.Contains(t, assistant.Cmd.Short, "budget assistant")
	assert.Contains(t, assistant.Cmd.Long, "streak badge")
	assert.NotNil(t, assistant.Cmd.RunE)
	assert.Error(t, assistant.Cmd.Args(assistant.Cmd, []string{"unexpected"}))
	assert.NoError(t, assistant.Cmd.Args(assistant.Cmd, nil))
}
