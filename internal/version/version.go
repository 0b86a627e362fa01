package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags at build time:
//
//	go build -ldflags "-X github.com/soyeahso/underline/internal/version.Version=1.0.0
//	  -X github.com/soyeahso/underline/internal/version.Commit=abc123
//	  -X github.com/soyeahso/underline/internal/version.Date=2026-01-01"
//
// Without ldflags, Commit and Date fall back to the VCS stamp the go tool
// embeds in the binary.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns a formatted version string.
func Info() string {
	commit, date := Commit, Date
	if commit == "unknown" || date == "unknown" {
		vcsCommit, vcsDate := fromBuildInfo()
		if commit == "unknown" && vcsCommit != "" {
			commit = vcsCommit
		}
		if date == "unknown" && vcsDate != "" {
			date = vcsDate
		}
	}
	return fmt.Sprintf("underline %s (commit: %s, built: %s, %s/%s)",
		Version, short(commit), date, runtime.GOOS, runtime.GOARCH)
}

func fromBuildInfo() (commit, date string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			date = s.Value
		}
	}
	return commit, date
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
