package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/tidominer/bankino/internal/buildinfo.Version=..." at release time.
var (
	Version = "v0.2"
	Commit  = "none"
	Date    = "unknown"
)

// String is the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
