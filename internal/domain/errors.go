package domain

import "errors"

// Domain errors.
var (
	ErrNoGoals          = errors.New("no goals specified (pass goals or set maven.goals in the config)")
	ErrInvalidDefine    = errors.New("invalid define")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrInvalidGoals     = errors.New("invalid goals")
)
