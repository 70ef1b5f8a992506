// Package ui renders the progress banners printed while a component is
// scaffolded and builds the diagnostic logger used by --verbose.
package ui
