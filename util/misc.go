package util

import (
	"runtime/debug"
)

// GetGitHash returns the vcs revision the binary was built from
func GetGitHash() string {
	hash := "unknown"
	if info, available := debug.ReadBuildInfo(); available {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				hash = setting.Value
				break
			}
		}
	}
	return hash
}

// GetVersion is the fallback when no version was injected with ldflags
func GetVersion() string {
	version := "unknown"
	if info, available := debug.ReadBuildInfo(); available && info.Main.Version != "" {
		version = info.Main.Version
	}
	return version
}
