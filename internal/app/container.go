// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/runoshun/mvnwrap/internal/infra/config"
	"github.com/runoshun/mvnwrap/internal/infra/executor"
	"github.com/runoshun/mvnwrap/internal/infra/git"
	"github.com/runoshun/mvnwrap/internal/infra/logging"
	"github.com/runoshun/mvnwrap/internal/usecase"
)

// LogLevelEnv overrides log.level from the config files.
const LogLevelEnv = "MVNWRAP_LOG_LEVEL"

// disabledLogDir turns file logging off when used as log.dir.
const disabledLogDir = "-"

// Config holds the application configuration paths.
type Config struct {
	Dir             string // Directory mvnwrap was started in
	GlobalConfigDir string // Path to the global config directory (e.g., ~/.config/mvnwrap)
	LogDir          string // Directory for run logs; empty when file logging is disabled
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Launcher      domain.Launcher
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Repos         domain.RepoLocator
	RunLogger     domain.Logger
	Clock         domain.Clock

	// Pointer fields
	Logger     *slog.Logger
	fileLogger *logging.Logger
	loaderFor  func(dir string) domain.ConfigLoader

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) *Container {
	cfg := Config{
		Dir:             dir,
		GlobalConfigDir: config.DefaultGlobalConfigDir(),
	}

	configLoader := config.NewLoaderWithGlobalDir(dir, cfg.GlobalConfigDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// A broken config is reported by the command that needs it.
		appConfig = domain.NewDefaultConfig()
	}

	levelStr := appConfig.Log.Level
	if env := os.Getenv(LogLevelEnv); env != "" {
		levelStr = env
	}
	level := logging.ParseLevel(levelStr)

	switch appConfig.Log.Dir {
	case disabledLogDir:
		cfg.LogDir = ""
	case "":
		cfg.LogDir = logging.DefaultDir()
	default:
		cfg.LogDir = appConfig.Log.Dir
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	fileLogger := logging.New(cfg.LogDir, level)

	return &Container{
		Launcher:      executor.NewLauncher(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(dir, cfg.GlobalConfigDir),
		Repos:         git.NewLocator(),
		RunLogger:     fileLogger,
		Clock:         domain.RealClock{},
		Logger:        logger,
		fileLogger:    fileLogger,
		loaderFor: func(d string) domain.ConfigLoader {
			return config.NewLoaderWithGlobalDir(d, cfg.GlobalConfigDir)
		},
		Config: cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// ConfigLoaderFor always returns loader.
func NewWithDeps(
	cfg Config,
	launcher domain.Launcher,
	loader domain.ConfigLoader,
	manager domain.ConfigManager,
	repos domain.RepoLocator,
	runLogger domain.Logger,
	clock domain.Clock,
	logger *slog.Logger,
) *Container {
	return &Container{
		Launcher:      launcher,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Repos:         repos,
		RunLogger:     runLogger,
		Clock:         clock,
		Logger:        logger,
		loaderFor:     func(string) domain.ConfigLoader { return loader },
		Config:        cfg,
	}
}

// ConfigLoaderFor returns a loader reading the project config of dir.
// It is the container's own loader when dir is the start directory.
func (c *Container) ConfigLoaderFor(dir string) domain.ConfigLoader {
	if dir == "" || dir == c.Config.Dir {
		return c.ConfigLoader
	}
	return c.loaderFor(dir)
}

// Close releases open log files.
func (c *Container) Close() error {
	if c.fileLogger == nil {
		return nil
	}
	return c.fileLogger.Close()
}

// UseCase factory methods

// ResolveRequestUseCase returns a new ResolveRequest use case.
func (c *Container) ResolveRequestUseCase() *usecase.ResolveRequest {
	return usecase.NewResolveRequest(c.Repos)
}

// RunBuildUseCase returns a new RunBuild use case.
func (c *Container) RunBuildUseCase() *usecase.RunBuild {
	return usecase.NewRunBuild(c.Launcher, c.RunLogger, c.Clock)
}

// ShowArgsUseCase returns a new ShowArgs use case.
func (c *Container) ShowArgsUseCase() *usecase.ShowArgs {
	return usecase.NewShowArgs(c.Launcher)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
