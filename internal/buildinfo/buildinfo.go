package buildinfo

import "fmt"

// Set at link time with -ldflags "-X github.com/katalvlaran/lychrel/internal/buildinfo.Version=…".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("lychrel %s (commit=%s, date=%s)", Version, Commit, Date)
}
