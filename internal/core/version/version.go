// Package version reports build metadata stamped in at link time
package version

import "runtime/debug"

// BuildInfo holds version information about the binary
type BuildInfo struct {
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go,omitempty" yaml:"go,omitempty"`
}

// Set with -ldflags "-X 'bitextclean/internal/core/version.version=v0.1.0'
// -X 'bitextclean/internal/core/version.commit=abcd' -X 'bitextclean/internal/core/version.date=2026-01-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	bi := BuildInfo{
		Service: "bitextclean",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if b, ok := debug.ReadBuildInfo(); ok && b != nil {
		bi.Go = b.GoVersion
	}
	return bi
}

// String renders a one-line banner for logs
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}
