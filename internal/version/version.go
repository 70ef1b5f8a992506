package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/agentx-labs/new-component/internal/branding"
)

// Dev is the version reported by builds without ldflags.
const Dev = "dev"

// Info is the build identity of the binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// New returns Info with empty fields replaced by placeholders.
func New(version, commit, date string) Info {
	if version == "" {
		version = Dev
	}
	if commit == "" {
		commit = "none"
	}
	if date == "" {
		date = "unknown"
	}
	return Info{Version: version, Commit: commit, Date: date}
}

// Semver parses Version, tolerating a leading "v".
func (i Info) Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(i.Version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", i.Version, err)
	}
	return v, nil
}

// Normalized returns the canonical semver form, or Version unchanged when it
// is not a semantic version (e.g. "dev").
func (i Info) Normalized() string {
	v, err := i.Semver()
	if err != nil {
		return i.Version
	}
	return v.String()
}

// IsDev reports whether the binary was built without a release version.
func (i Info) IsDev() bool {
	_, err := i.Semver()
	return err != nil
}

// Short is the bare version number.
func (i Info) Short() string { return i.Normalized() }

func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", branding.CLIName(), i.Normalized(), i.Commit, i.Date)
}
