package domain

import (
	"strconv"
	"strings"
)

// BuildArgs translates options and an invocation request into the argument
// vector passed to Maven.
//
// The order is fixed: settings, pom file, boolean switches, threads,
// output switches, defines, projects, profiles and finally the commands.
// Values are never validated; Maven rejects what it does not understand.
// Each call returns a new slice.
func BuildArgs(opts Options, commands []string, defines Defines, projects []string) []string {
	args := make([]string, 0, 16+len(defines)+len(commands))

	if opts.SettingsFile != "" {
		args = append(args, "-s", opts.SettingsFile)
	}
	if opts.PomFile != "" {
		args = append(args, "-f", opts.PomFile)
	}
	if opts.Quiet {
		args = append(args, "-q")
	}
	if opts.Debug {
		args = append(args, "-X")
	}
	if opts.UpdateSnapshots {
		args = append(args, "-U")
	}
	if opts.Offline {
		args = append(args, "-o")
	}
	if opts.NonRecursive {
		args = append(args, "-N")
	}
	if opts.Threads != 0 {
		args = append(args, "-T", strconv.Itoa(opts.Threads))
	}
	if opts.NoTransferProgress {
		args = append(args, "-ntp")
	}
	if opts.BatchMode {
		args = append(args, "-B")
	}
	if opts.LogFile != "" {
		args = append(args, "-l", opts.LogFile)
	}
	if opts.AlsoMake {
		args = append(args, "-am")
	}

	for _, def := range defines {
		args = append(args, def.Arg())
	}

	if len(projects) > 0 {
		args = append(args, "-pl", strings.Join(projects, ","))
	}
	if len(opts.Profiles) > 0 {
		args = append(args, "-P"+strings.Join(opts.Profiles, ","))
	}

	return append(args, commands...)
}
