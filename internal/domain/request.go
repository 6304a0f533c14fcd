package domain

// Request is one fully resolved Maven invocation request.
// Fields are ordered to minimize memory padding.
type Request struct {
	Goals    []string // Commands appended after all flags
	Projects []string // Reactor projects for -pl
	Defines  Defines  // System properties, in order
	Options  Options
}

// Args returns the argument vector for the request.
func (r Request) Args() []string {
	return BuildArgs(r.Options, r.Goals, r.Defines, r.Projects)
}
