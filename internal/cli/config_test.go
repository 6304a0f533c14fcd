package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// newConfigTestContainer creates an app.Container with real config infrastructure.
// It returns the project directory and the global config directory.
func newConfigTestContainer(t *testing.T) (*app.Container, string, string) {
	t.Helper()

	projectDir := t.TempDir()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	c := app.New(projectDir)
	t.Cleanup(func() { _ = c.Close() })
	return c, projectDir, filepath.Join(configHome, "mvnwrap")
}

func executeConfig(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(c, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"config"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _, _ := newConfigTestContainer(t)

	output, err := executeConfig(t, c)

	require.NoError(t, err)
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "show")
	assert.Contains(t, output, "template")
	assert.Contains(t, output, "init")
}

func TestConfigShowCommand_DisplaysEffectiveConfig(t *testing.T) {
	// Setup
	c, projectDir, globalDir := newConfigTestContainer(t)
	content := "[maven]\nquiet = true\nprofiles = [\"ci\"]\n"
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte(content), 0o600))

	// Execute
	output, err := executeConfig(t, c, "show")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, output, "[Loaded from]")
	assert.Contains(t, output, filepath.Join(globalDir, "config.toml")+" (not found)")
	assert.Contains(t, output, "- "+domain.ProjectConfigPath(projectDir)+"\n")
	assert.Contains(t, output, "[Effective Config]")

	_, effective, found := bytes.Cut([]byte(output), []byte("[Effective Config]\n"))
	require.True(t, found)
	var cfg domain.Config
	require.NoError(t, toml.Unmarshal(effective, &cfg))
	assert.True(t, cfg.Maven.Quiet)
	assert.Equal(t, []string{"ci"}, cfg.Maven.Profiles)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfigShowCommand_YAML(t *testing.T) {
	c, projectDir, _ := newConfigTestContainer(t)
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte("[maven]\nthreads = 4\n"), 0o600))

	output, err := executeConfig(t, c, "show", "--format", "yaml", "--ignore-global")

	require.NoError(t, err)
	_, effective, found := bytes.Cut([]byte(output), []byte("[Effective Config]\n"))
	require.True(t, found)
	var cfg domain.Config
	require.NoError(t, yaml.Unmarshal(effective, &cfg))
	assert.Equal(t, 4, cfg.Maven.Threads)
	assert.NotContains(t, output, "config.toml")
}

func TestConfigShowCommand_UnknownFormat(t *testing.T) {
	c, _, _ := newConfigTestContainer(t)

	_, err := executeConfig(t, c, "show", "--format", "json")

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestConfigTemplateCommand_OutputsTemplate(t *testing.T) {
	c, projectDir, _ := newConfigTestContainer(t)
	// A broken project config must not matter.
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte("[maven\n"), 0o600))

	output, err := executeConfig(t, c, "template")

	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate(), output)
}

func TestConfigInitCommand(t *testing.T) {
	t.Run("creates project config", func(t *testing.T) {
		c, projectDir, _ := newConfigTestContainer(t)

		output, err := executeConfig(t, c, "init")

		require.NoError(t, err)
		path := domain.ProjectConfigPath(projectDir)
		assert.Contains(t, output, "Created config file: "+path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, domain.ConfigTemplate(), string(content))
	})

	t.Run("creates global config", func(t *testing.T) {
		c, _, globalDir := newConfigTestContainer(t)

		_, err := executeConfig(t, c, "init", "--global")

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(globalDir, "config.toml"))
	})

	t.Run("fails when config exists", func(t *testing.T) {
		c, projectDir, _ := newConfigTestContainer(t)
		require.NoError(t, os.WriteFile(domain.ProjectConfigPath(projectDir), []byte("# mine\n"), 0o600))

		_, err := executeConfig(t, c, "init")

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("force overwrites", func(t *testing.T) {
		c, projectDir, _ := newConfigTestContainer(t)
		path := domain.ProjectConfigPath(projectDir)
		require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o600))

		_, err := executeConfig(t, c, "init", "--force")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, domain.ConfigTemplate(), string(content))
	})
}
