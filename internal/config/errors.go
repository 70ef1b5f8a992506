package config

import (
	"fmt"
	"strings"
)

// LookupReason says which part of a project/template lookup failed.
type LookupReason int

const (
	ReasonProjectNotFound LookupReason = iota
	ReasonTemplateNotFound
	ReasonMissingDir
)

// LookupError is returned when the requested project/template combination is
// not configured.
type LookupError struct {
	Project   string
	Template  string
	Reason    LookupReason
	Available []string
}

func (e *LookupError) Error() string {
	switch e.Reason {
	case ReasonProjectNotFound:
		if e.Project == DefaultProject {
			return "no default configuration found"
		}
		return fmt.Sprintf("project %q is not configured", e.Project)
	case ReasonMissingDir:
		return fmt.Sprintf("template %q in project %q has no dir", e.Template, e.Project)
	default:
		msg := fmt.Sprintf("template %q is not configured for project %q", e.Template, e.Project)
		if len(e.Available) > 0 {
			msg += " (configured: " + strings.Join(e.Available, ", ") + ")"
		}
		return msg
	}
}
