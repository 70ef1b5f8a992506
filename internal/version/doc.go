// Package version formats the build information injected through ldflags.
package version
