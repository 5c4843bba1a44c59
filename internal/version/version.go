// Package version carries the build version, set at link time with
// -ldflags "-X rescore/internal/version.Version=v1.2.3".
package version

var Version = "dev"
