package version

import (
	"fmt"
	"runtime"
)

var (
	// Vcs is the commit hash for the binary build
	Vcs string
	// BuildTime is the date for the binary build
	BuildTime string
	// BuildVersion is the pwbctl version. Will be overwritten from build.
	BuildVersion string
)

// GetUserAgent returns a user agent of the format: pwbctl/<version> (<goos>/<goarch>) <vcs>/<timestamp>
func GetUserAgent() string {
	return fmt.Sprintf("pwbctl/%s (%s/%s) %s/%s", BuildVersion, runtime.GOOS, runtime.GOARCH, Vcs, BuildTime)
}
