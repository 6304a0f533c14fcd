package cli

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/runoshun/mvnwrap/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// mavenFlags holds the flags shared by run, args and which.
// Fields are ordered to minimize memory padding.
type mavenFlags struct {
	dir          string
	executable   string
	pomFile      string
	settingsFile string
	logFile      string
	profiles     []string
	defines      []string
	projects     []string
	threads      int

	quiet              bool
	debug              bool
	updateSnapshots    bool
	offline            bool
	nonRecursive       bool
	noTransferProgress bool
	batchMode          bool
	alsoMake           bool
	repoRoot           bool
}

// bind registers the flags on cmd.
func (f *mavenFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.dir, "dir", "C", "", "Run Maven in this directory")
	fs.StringVar(&f.executable, "executable", "", "Maven executable to run instead of ./mvnw or mvn")
	fs.StringVarP(&f.pomFile, "file", "f", "", "Alternate POM file (-f)")
	fs.StringVarP(&f.settingsFile, "settings", "s", "", "Alternate user settings file (-s)")
	fs.StringVarP(&f.logFile, "log-file", "l", "", "Maven log file (-l)")
	fs.StringSliceVarP(&f.profiles, "profiles", "P", nil, "Profiles to activate (-P), replaces configured profiles")
	fs.StringArrayVarP(&f.defines, "define", "D", nil, "System property key=value (-D), repeatable")
	fs.StringSliceVar(&f.projects, "projects", nil, "Reactor projects to build (-pl)")
	fs.StringSliceVar(&f.projects, "pl", nil, "Alias for --projects")
	fs.IntVarP(&f.threads, "threads", "T", 0, "Thread count (-T)")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Only show errors (-q)")
	fs.BoolVarP(&f.debug, "debug", "X", false, "Debug output (-X)")
	fs.BoolVarP(&f.updateSnapshots, "update-snapshots", "U", false, "Force snapshot updates (-U)")
	fs.BoolVarP(&f.offline, "offline", "o", false, "Work offline (-o)")
	fs.BoolVarP(&f.nonRecursive, "non-recursive", "N", false, "Do not recurse into sub-projects (-N)")
	fs.BoolVar(&f.noTransferProgress, "no-transfer-progress", false, "Hide transfer progress (-ntp)")
	fs.BoolVar(&f.noTransferProgress, "ntp", false, "Alias for --no-transfer-progress")
	fs.BoolVarP(&f.batchMode, "batch-mode", "B", false, "Non-interactive mode (-B)")
	fs.BoolVar(&f.alsoMake, "also-make", false, "Also build required projects (-am)")
	fs.BoolVar(&f.alsoMake, "am", false, "Alias for --also-make")
	fs.BoolVar(&f.repoRoot, "repo-root", false, "Run from the root of the enclosing git repository")

	_ = fs.MarkHidden("pl")
	_ = fs.MarkHidden("ntp")
	_ = fs.MarkHidden("am")
}

// changed reports whether any of the named flags was set.
func changed(fs *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// apply overlays the flags that were set onto mc.
func (f *mavenFlags) apply(fs *pflag.FlagSet, mc *domain.MavenConfig) {
	if changed(fs, "executable") {
		mc.Executable = f.executable
	}
	if changed(fs, "file") {
		mc.PomFile = f.pomFile
	}
	if changed(fs, "settings") {
		mc.SettingsFile = f.settingsFile
	}
	if changed(fs, "log-file") {
		mc.LogFile = f.logFile
	}
	if changed(fs, "profiles") {
		mc.Profiles = f.profiles
	}
	if changed(fs, "threads") {
		mc.Threads = f.threads
	}
	if changed(fs, "quiet") {
		mc.Quiet = f.quiet
	}
	if changed(fs, "debug") {
		mc.Debug = f.debug
	}
	if changed(fs, "update-snapshots") {
		mc.UpdateSnapshots = f.updateSnapshots
	}
	if changed(fs, "offline") {
		mc.Offline = f.offline
	}
	if changed(fs, "non-recursive") {
		mc.NonRecursive = f.nonRecursive
	}
	if changed(fs, "no-transfer-progress", "ntp") {
		mc.NoTransferProgress = f.noTransferProgress
	}
	if changed(fs, "batch-mode") {
		mc.BatchMode = f.batchMode
	}
	if changed(fs, "also-make", "am") {
		mc.AlsoMake = f.alsoMake
	}
	if changed(fs, "repo-root") {
		mc.UseRepoRoot = f.repoRoot
	}
}

// resolveRequest merges config and flags into a request.
func (f *mavenFlags) resolveRequest(cmd *cobra.Command, c *app.Container, goals []string) (*domain.Request, error) {
	dir := c.Config.Dir
	if f.dir != "" {
		abs, err := filepath.Abs(f.dir)
		if err != nil {
			return nil, fmt.Errorf("resolve directory %s: %w", f.dir, err)
		}
		dir = abs
	}

	cfg, err := c.ConfigLoaderFor(dir).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dir != c.Config.Dir {
		printWarnings(cmd, cfg.Warnings)
	}

	mc := cfg.Maven
	f.apply(cmd.Flags(), &mc)

	return c.ResolveRequestUseCase().Execute(cmd.Context(), usecase.ResolveRequestInput{
		Dir:      dir,
		Goals:    goals,
		Defines:  f.defines,
		Projects: f.projects,
		Maven:    mc,
	})
}
