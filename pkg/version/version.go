// Package version holds the release version stamped into the rsx binary.
package version

// Version is the current release, overridable at build time with
// -ldflags "-X .../pkg/version.Version=v1.2.3".
var Version = "v0.1.0"
