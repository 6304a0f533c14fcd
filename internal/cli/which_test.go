package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhichCommand(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		env := newTestEnv(t)

		stdout, _ := env.mustExecute(t, "which")

		assert.Equal(t, "mvn\n", stdout)
	})

	t.Run("explicit executable", func(t *testing.T) {
		env := newTestEnv(t)

		stdout, _ := env.mustExecute(t, "which", "--executable", "/opt/maven/bin/mvn")

		assert.Equal(t, "/opt/maven/bin/mvn\n", stdout)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.execute("which", "clean")

		assert.Error(t, err)
	})
}
