// Package executor launches Maven processes.
package executor

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/runoshun/mvnwrap/internal/domain"
)

// Ensure Launcher implements domain.Launcher interface.
var _ domain.Launcher = (*Launcher)(nil)

// Launcher resolves the Maven executable and runs it with pass-through stdio.
// Fields are ordered to minimize memory padding.
type Launcher struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	files    domain.FileChecker
	getenv   func(string) string
	platform domain.Platform
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithPlatform overrides the detected host platform.
func WithPlatform(p domain.Platform) Option {
	return func(l *Launcher) { l.platform = p }
}

// WithGetenv overrides environment lookups.
func WithGetenv(getenv func(string) string) Option {
	return func(l *Launcher) { l.getenv = getenv }
}

// WithFileChecker overrides the filesystem probe used to find the wrapper script.
func WithFileChecker(files domain.FileChecker) Option {
	return func(l *Launcher) { l.files = files }
}

// WithStdio connects the child process to the given streams instead of the
// current process's standard streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// NewLauncher creates a launcher for the current platform.
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		files:    OSFileChecker{},
		getenv:   os.Getenv,
		platform: domain.CurrentPlatform(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve picks the executable and builds the final command line.
//
// The explicit executable wins, then a wrapper script in the working
// directory, then the system Maven. On Windows the result is run through
// the command processor as "/s /c <executable> args...".
func (l *Launcher) Resolve(sel domain.Selection, args []string) domain.Invocation {
	executable := l.resolveExecutable(sel)

	inv := domain.Invocation{
		Program:    executable,
		Executable: executable,
		Dir:        sel.WorkingDirectory,
	}

	if l.platform.IsWindows() {
		comspec := l.getenv(domain.ComSpecEnv)
		if comspec == "" {
			comspec = domain.DefaultComSpec
		}
		inv.Program = comspec
		inv.Args = make([]string, 0, len(args)+3)
		inv.Args = append(inv.Args, "/s", "/c", executable)
		inv.Args = append(inv.Args, args...)
		return inv
	}

	inv.Args = append([]string(nil), args...)
	return inv
}

func (l *Launcher) resolveExecutable(sel domain.Selection) string {
	if sel.ExecutablePath != "" {
		return sel.ExecutablePath
	}
	if wrapper := l.wrapperScript(sel.WorkingDirectory); wrapper != "" {
		return wrapper
	}
	return domain.SystemExecutable
}

// wrapperScript returns the absolute path of the wrapper script in dir, or "".
func (l *Launcher) wrapperScript(dir string) string {
	path, err := filepath.Abs(filepath.Join(dir, domain.WrapperScriptName))
	if err != nil {
		return ""
	}
	if !l.files.Exists(path) {
		return ""
	}
	return path
}

// Launch starts the process and returns a future that settles when it exits.
// The future resolves to domain.Success only for exit code 0. Start failures
// reject the future with the underlying error unchanged.
func (l *Launcher) Launch(sel domain.Selection, args []string) *domain.Future {
	inv := l.Resolve(sel, args)
	future := domain.NewFuture()

	// #nosec G204 - program and args come from the resolved invocation
	cmd := exec.Command(inv.Program, inv.Args...)
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Start(); err != nil {
		future.Reject(err)
		return future
	}

	go func() {
		err := cmd.Wait()
		if cmd.ProcessState == nil {
			future.Reject(err)
			return
		}
		// The exit status decides the outcome even if copying stdio failed.
		future.Resolve(outcomeOf(cmd.ProcessState))
	}()
	return future
}

// outcomeOf converts a process exit state into an outcome.
func outcomeOf(state *os.ProcessState) domain.Outcome {
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return &domain.Failure{ExitCode: -1, Signal: status.Signal()}
	}
	if code := state.ExitCode(); code != 0 {
		return &domain.Failure{ExitCode: code}
	}
	return domain.Success{}
}

// OSFileChecker implements domain.FileChecker against the real filesystem.
type OSFileChecker struct{}

// Exists reports whether path can be stat'ed.
func (OSFileChecker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
