// Package templates locates component template files. Templates are plain
// text files named <template>.js; the built-in set is embedded in the binary
// and a directory on disk can replace it.
package templates
