package app

import (
	"log/slog"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/coursepilot-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildAttr describes the running binary for startup logs. Commit and build
// time fall back to the VCS stamp recorded by the toolchain.
func BuildAttr() slog.Attr {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", commit),
		slog.String("time", built),
	)
}
