// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/mvnwrap/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .mvnwrap.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/mvnwrap)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns $XDG_CONFIG_HOME/mvnwrap, falling back to ~/.config/mvnwrap.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (global + project).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, project *fileConfig
	var err error

	if !opts.IgnoreGlobal && l.globalConfDir != "" {
		global, err = l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreProject && l.projectDir != "" {
		project, err = l.loadFile(domain.ProjectConfigPath(l.projectDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		global.applyTo(base)
	}
	if project != nil {
		project.applyTo(base)
	}
	return base, nil
}

// fileConfig mirrors the TOML file. Pointer fields tell "unset" apart from zero values.
type fileConfig struct {
	Maven    fileMaven `toml:"maven"`
	Log      fileLog   `toml:"log"`
	warnings []string
}

type fileMaven struct {
	Executable         *string  `toml:"executable"`
	PomFile            *string  `toml:"pom_file"`
	SettingsFile       *string  `toml:"settings_file"`
	LogFile            *string  `toml:"log_file"`
	Goals              *string  `toml:"goals"`
	Profiles           []string `toml:"profiles"`
	Defines            []string `toml:"defines"`
	Threads            *int     `toml:"threads"`
	Quiet              *bool    `toml:"quiet"`
	Debug              *bool    `toml:"debug"`
	UpdateSnapshots    *bool    `toml:"update_snapshots"`
	Offline            *bool    `toml:"offline"`
	NonRecursive       *bool    `toml:"non_recursive"`
	NoTransferProgress *bool    `toml:"no_transfer_progress"`
	BatchMode          *bool    `toml:"batch_mode"`
	AlsoMake           *bool    `toml:"also_make"`
	UseRepoRoot        *bool    `toml:"use_repo_root"`
}

type fileLog struct {
	Level *string `toml:"level"`
	Dir   *string `toml:"dir"`
}

// knownKeys lists the accepted keys per section.
var knownKeys = map[string][]string{
	"maven": {
		"executable", "pom_file", "settings_file", "log_file", "goals", "profiles", "defines",
		"threads", "quiet", "debug", "update_snapshots", "offline", "non_recursive",
		"no_transfer_progress", "batch_mode", "also_make", "use_repo_root",
	},
	"log": {"level", "dir"},
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.warnings = collectWarnings(path, raw)

	if _, err := domain.ParseDefines(cfg.Maven.Defines); err != nil {
		return nil, fmt.Errorf("%s: maven.defines: %w", path, err)
	}

	return &cfg, nil
}

// collectWarnings reports sections and keys that are not recognized.
func collectWarnings(path string, raw map[string]any) []string {
	var warnings []string

	sections := make([]string, 0, len(raw))
	for section := range raw {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		keys, ok := knownKeys[section]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: unknown section [%s]", path, section))
			continue
		}
		m, ok := raw[section].(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: %s must be a table", path, section))
			continue
		}
		var unknown []string
		for k := range m {
			if !contains(keys, k) {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			warnings = append(warnings, fmt.Sprintf("%s: unknown key in [%s]: %s", path, section, k))
		}
	}
	return warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// applyTo overlays the values set in f onto cfg.
// Defines are merged by key; every other field replaces the base value.
func (f *fileConfig) applyTo(cfg *domain.Config) {
	m := &cfg.Maven
	setString(&m.Executable, f.Maven.Executable)
	setString(&m.PomFile, f.Maven.PomFile)
	setString(&m.SettingsFile, f.Maven.SettingsFile)
	setString(&m.LogFile, f.Maven.LogFile)
	setString(&m.Goals, f.Maven.Goals)
	if f.Maven.Profiles != nil {
		m.Profiles = append([]string(nil), f.Maven.Profiles...)
	}
	if len(f.Maven.Defines) > 0 {
		m.Defines = mergeDefines(m.Defines, f.Maven.Defines)
	}
	if f.Maven.Threads != nil {
		m.Threads = *f.Maven.Threads
	}
	setBool(&m.Quiet, f.Maven.Quiet)
	setBool(&m.Debug, f.Maven.Debug)
	setBool(&m.UpdateSnapshots, f.Maven.UpdateSnapshots)
	setBool(&m.Offline, f.Maven.Offline)
	setBool(&m.NonRecursive, f.Maven.NonRecursive)
	setBool(&m.NoTransferProgress, f.Maven.NoTransferProgress)
	setBool(&m.BatchMode, f.Maven.BatchMode)
	setBool(&m.AlsoMake, f.Maven.AlsoMake)
	setBool(&m.UseRepoRoot, f.Maven.UseRepoRoot)

	setString(&cfg.Log.Level, f.Log.Level)
	setString(&cfg.Log.Dir, f.Log.Dir)

	cfg.Warnings = append(cfg.Warnings, f.warnings...)
}

// mergeDefines overlays entries onto base. Both were validated when loaded.
func mergeDefines(base, entries []string) []string {
	b, _ := domain.ParseDefines(base)
	e, _ := domain.ParseDefines(entries)
	return b.Merge(e).Strings()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
