// Package settings provides build metadata, per-run configuration, and
// context helpers shared by the crumbline CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "crumbline"

// DefaultBuildVersion is the version reported by builds without ldflags.
const DefaultBuildVersion = "v0.0.0-nightly"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: DefaultBuildVersion,
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds settings for a single invocation: where output goes, how loud
// logging is, and whether color is allowed.
type Run struct {
	MinLogLevel int8
	ConfigPath  string
	Output      string
	NoColor     bool
	Width       int
}

// NewCliParams returns the defaults used when crumbline runs from the command
// line: info logging, text output, color allowed and no width limit.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Output:      "text",
		NoColor:     false,
		Width:       0,
	}
}
