// Package version exposes build version information.
package version

// Set at build time with -ldflags "-X github.com/rshade/canteenco2/pkg/version.version=...".
//
//nolint:gochecknoglobals // ldflags target
var (
	version = "0.1.0-dev"
	commit  = "none"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}
