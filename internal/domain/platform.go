package domain

import (
	"runtime"
	"strings"
)

// Platform identifies the host operating system family, e.g. "linux" or "windows".
type Platform string

// CurrentPlatform returns the platform the binary is running on.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// IsWindows reports whether p belongs to the Windows family.
func (p Platform) IsWindows() bool {
	return strings.HasPrefix(strings.ToLower(string(p)), "win")
}
