package version

// Version contains the application version information.
// Set via build-time ldflags for releases:
// go build -ldflags "-X github.com/tomkeim/sitekit/internal/version.Version=v1.2.0".
var Version = "dev"
