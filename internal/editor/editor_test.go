package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, []string{"vi"}, command())

	t.Setenv("EDITOR", "nano")
	assert.Equal(t, []string{"nano"}, command())

	t.Setenv("VISUAL", "code --wait")
	assert.Equal(t, []string{"code", "--wait"}, command())
}

func TestOpen_RunsEditorWithPath(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "true")
	assert.NoError(t, Open("/tmp/draft.md"))

	t.Setenv("EDITOR", "false")
	assert.Error(t, Open("/tmp/draft.md"))
}
