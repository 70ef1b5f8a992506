// Package scaffold creates a component from a template. NewPlan resolves the
// output paths for a project/template selection, Renderer substitutes the
// component name and formats the text, and Pipeline performs the filesystem
// side effects as a fixed sequence of named states that stops at the first
// failure without rolling anything back.
package scaffold
