package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsCommand(t *testing.T) {
	env := newTestEnv(t)

	stdout, _ := env.mustExecute(t, "args", "-q", "-D", "msg=hello world", "test")

	assert.Equal(t, "cd /work/app\nmvn -q \"-Dmsg=hello world\" test\n", stdout)
	assert.Empty(t, env.launcher.Calls)
}

func TestArgsCommand_WithoutGoals(t *testing.T) {
	env := newTestEnv(t)

	stdout, _ := env.mustExecute(t, "args")

	assert.Equal(t, "cd /work/app\nmvn\n", stdout)
}

func TestQuoteArg(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"clean", "clean"},
		{"-Dkey=value", "-Dkey=value"},
		{"", `""`},
		{"a b", `"a b"`},
		{`say "hi"`, `"say \"hi\""`},
		{"$HOME", `"$HOME"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, quoteArg(tt.input))
		})
	}
}
