package version

import "runtime/debug"

// Set through -ldflags "-X github.com/fmueller/wavscribe/internal/version.Version=...".
var Version = "0.1.0"

// Resolve returns Version, suffixed with the short VCS revision (and
// "-dirty") when the binary was built from a checkout rather than a release.
func Resolve() string {
	return resolveVersion(Version, debug.ReadBuildInfo)
}

func resolveVersion(base string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if base == "" {
		base = "0.0.0"
	}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return base
	}

	var revision string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return base
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}

	suffix := "g" + revision
	if modified {
		suffix += "-dirty"
	}
	return base + "-" + suffix
}
