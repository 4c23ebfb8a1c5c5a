package version

// Version is the current version of the engine.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/quantpipe/quantpipe/internal/version.Version=1.2.3"
var Version = "v0.1.0"

// GetVersion returns the current version of the engine.
func GetVersion() string {
	return Version
}
