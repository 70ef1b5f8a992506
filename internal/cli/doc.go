// Package cli defines the Cobra root command for new-component. Command
// handlers only parse flags, assemble collaborators and format output; the
// work itself is delegated to the config, scaffold, templates and format
// packages.
package cli
