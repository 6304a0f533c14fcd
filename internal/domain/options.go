package domain

import "slices"

// Options describes how Maven is invoked.
// Every field is optional; the zero value runs the resolved executable
// in the working directory without extra flags.
// Fields are ordered to minimize memory padding.
type Options struct {
	WorkingDirectory string   // Process working directory
	ExecutablePath   string   // Overrides executable resolution
	PomFile          string   // -f <file>
	SettingsFile     string   // -s <file>
	LogFile          string   // -l <file>
	Profiles         []string // -P<a,b,c>
	Threads          int      // -T <n>, omitted when zero

	Quiet              bool // -q
	Debug              bool // -X
	UpdateSnapshots    bool // -U
	Offline            bool // -o
	NonRecursive       bool // -N
	NoTransferProgress bool // -ntp
	BatchMode          bool // -B
	AlsoMake           bool // -am
}

// Clone returns a copy of the options that shares no slices with o.
func (o Options) Clone() Options {
	c := o
	c.Profiles = slices.Clone(o.Profiles)
	return c
}

// Selection returns the executable selection derived from the options.
func (o Options) Selection() Selection {
	return Selection{
		ExecutablePath:   o.ExecutablePath,
		WorkingDirectory: o.WorkingDirectory,
	}
}
