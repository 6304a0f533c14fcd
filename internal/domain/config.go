package domain

import (
	_ "embed"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names and directories.
const (
	ConfigFileName        = "config.toml"
	ProjectConfigFileName = ".mvnwrap.toml"
	AppDirName            = "mvnwrap"
	GlobalLogFileName     = "mvnwrap.log"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-" yaml:"-"`
	Maven    MavenConfig `toml:"maven" yaml:"maven"`
	Log      LogConfig   `toml:"log" yaml:"log"`
}

// MavenConfig holds settings from the [maven] section.
// Fields are ordered to minimize memory padding.
type MavenConfig struct {
	Executable   string   `toml:"executable,omitempty" yaml:"executable,omitempty"`
	PomFile      string   `toml:"pom_file,omitempty" yaml:"pom_file,omitempty"`
	SettingsFile string   `toml:"settings_file,omitempty" yaml:"settings_file,omitempty"`
	LogFile      string   `toml:"log_file,omitempty" yaml:"log_file,omitempty"`
	Goals        string   `toml:"goals,omitempty" yaml:"goals,omitempty"` // Default goals, split like a shell command line
	Profiles     []string `toml:"profiles,omitempty" yaml:"profiles,omitempty"`
	Defines      []string `toml:"defines,omitempty" yaml:"defines,omitempty"` // "key=value" entries, applied in order
	Threads      int      `toml:"threads,omitempty" yaml:"threads,omitempty"`

	Quiet              bool `toml:"quiet,omitempty" yaml:"quiet,omitempty"`
	Debug              bool `toml:"debug,omitempty" yaml:"debug,omitempty"`
	UpdateSnapshots    bool `toml:"update_snapshots,omitempty" yaml:"update_snapshots,omitempty"`
	Offline            bool `toml:"offline,omitempty" yaml:"offline,omitempty"`
	NonRecursive       bool `toml:"non_recursive,omitempty" yaml:"non_recursive,omitempty"`
	NoTransferProgress bool `toml:"no_transfer_progress,omitempty" yaml:"no_transfer_progress,omitempty"`
	BatchMode          bool `toml:"batch_mode,omitempty" yaml:"batch_mode,omitempty"`
	AlsoMake           bool `toml:"also_make,omitempty" yaml:"also_make,omitempty"`
	UseRepoRoot        bool `toml:"use_repo_root,omitempty" yaml:"use_repo_root,omitempty"` // Run from the git repository root
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" yaml:"level,omitempty"` // debug, info, warn, error
	Dir   string `toml:"dir,omitempty" yaml:"dir,omitempty"`     // Empty uses the default state directory; "-" disables file logs
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Options converts the [maven] section into invocation options.
func (c MavenConfig) Options(dir string) Options {
	return Options{
		WorkingDirectory:   dir,
		ExecutablePath:     c.Executable,
		PomFile:            c.PomFile,
		SettingsFile:       c.SettingsFile,
		LogFile:            c.LogFile,
		Profiles:           append([]string(nil), c.Profiles...),
		Threads:            c.Threads,
		Quiet:              c.Quiet,
		Debug:              c.Debug,
		UpdateSnapshots:    c.UpdateSnapshots,
		Offline:            c.Offline,
		NonRecursive:       c.NonRecursive,
		NoTransferProgress: c.NoTransferProgress,
		BatchMode:          c.BatchMode,
		AlsoMake:           c.AlsoMake,
	}
}

// ConfigTemplate returns the commented template written by "config init".
func ConfigTemplate() string {
	return configTemplateContent
}

// GlobalConfigDir returns the global configuration directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ProjectConfigPath returns the project config file path for dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(logDir string) string {
	return filepath.Join(logDir, GlobalLogFileName)
}

// RunLogPath returns the path to the log file of a single run.
func RunLogPath(logDir, runID string) string {
	return filepath.Join(logDir, "run-"+ShortRunID(runID)+".log")
}

// ShortRunID shortens a run ID for display and file names.
func ShortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
