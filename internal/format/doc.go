// Package format pretty-prints generated source before it is written. The
// Prettier formatter shells out to a prettier binary from the project or PATH;
// Basic is a built-in whitespace normalizer used when prettier is unavailable.
package format
