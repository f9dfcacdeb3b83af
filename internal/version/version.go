// Package version provides version information for cmdtarget.
package version

import "fmt"

// Name is the binary name printed with the version
const Name = "cmdtarget"

// Version information, set via ldflags during release builds
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// IsRelease reports whether this binary came from a release build
func IsRelease() bool {
	return Version != "dev"
}

// String returns the multi-line text printed by 'cmdtarget --version'
func String() string {
	if !IsRelease() {
		return fmt.Sprintf("%s dev build", Name)
	}
	return fmt.Sprintf("%s %s\n  commit: %s\n  built:  %s", Name, Version, Commit, Date)
}
