// Package version exposes the build version for logging and the health
// endpoint. A -ldflags override wins; otherwise the VCS revision from
// debug.BuildInfo is used, falling back to "dev".
package version

import "runtime/debug"

// AppName is used in version strings and log prefixes.
const AppName = "sleuth"

// gitCommitOverride is set via -ldflags for container builds where the
// .git directory is unavailable.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars), or "dev" when build
// info is unavailable (go test, non-git builds).
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return shorten(s.Value)
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "sleuth/<commit>" for user-agent strings and logs.
func Full() string {
	return AppName + "/" + GitCommit
}
