package main

import "runtime/debug"

var version = buildVersion()

// buildVersion derives a short version from the VCS stamp the go tool embeds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	revision = revision[:min(len(revision), 7)]
	if dirty {
		revision += "-dirty"
	}
	return revision
}
