package domain

// Executable names and fallbacks used by executable resolution.
const (
	// WrapperScriptName is the Maven wrapper script looked up at the working directory root.
	WrapperScriptName = "mvnw"
	// SystemExecutable is the Maven executable expected on PATH.
	SystemExecutable = "mvn"
	// ComSpecEnv names the environment variable holding the Windows command processor.
	ComSpecEnv = "COMSPEC"
	// DefaultComSpec is used when ComSpecEnv is unset.
	DefaultComSpec = "cmd.exe"
)

// Selection carries what executable resolution needs to know.
type Selection struct {
	ExecutablePath   string // Explicit executable, wins over everything else
	WorkingDirectory string // Directory probed for the wrapper script and used as cwd
}

// Invocation is a fully resolved command line.
// This type is used to pass command information between layers
// without exposing implementation details.
type Invocation struct {
	Program    string   // Program actually started
	Executable string   // Resolved Maven executable (differs from Program on Windows)
	Dir        string   // Working directory
	Args       []string // Arguments passed to Program
}

// Argv returns Program followed by Args.
func (i Invocation) Argv() []string {
	argv := make([]string, 0, len(i.Args)+1)
	argv = append(argv, i.Program)
	return append(argv, i.Args...)
}
