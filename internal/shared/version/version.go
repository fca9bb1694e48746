// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Set via -ldflags at build time, e.g.
// go build -ldflags "-X gmao/internal/shared/version.Version=1.2.0 -X gmao/internal/shared/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = "none"
)

// String returns a human-readable build identifier.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
