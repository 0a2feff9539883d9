package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set with -ldflags "-X"; the defaults mark a development build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const unknown = "unknown"

// Info contains version information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Module  string `json:"module"`
}

// Get collects build metadata, preferring values injected at link time
// over those recorded by the Go toolchain.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Module:  "dendra-hashsum",
	}

	build, ok := debug.ReadBuildInfo()
	if !ok {
		if info.Version == "dev" || info.Version == "" {
			info.Version = "development"
		}
		return info
	}

	if info.Version == "dev" || info.Version == "" {
		info.Version = "development"
		if v := build.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
	}
	for _, setting := range build.Settings {
		switch {
		case setting.Key == "vcs.revision" && (info.Commit == unknown || info.Commit == ""):
			info.Commit = setting.Value
		case setting.Key == "vcs.time" && (info.Date == unknown || info.Date == ""):
			info.Date = setting.Value
		}
	}
	return info
}

// Full returns the version with a short commit and build date when known.
func (i Info) Full() string {
	if i.Commit == unknown || len(i.Commit) <= 7 {
		return i.Version
	}
	short := i.Commit[:7]
	if i.Date != unknown {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, short)
}

// Print writes human-readable version information for appName to w.
func (i Info) Print(w io.Writer, appName string) {
	fmt.Fprintf(w, "%s version %s\n", appName, i.Full())
	fmt.Fprintf(w, "Module: %s\n", i.Module)
	fmt.Fprintf(w, "Commit: %s\n", i.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", i.Date)
}
