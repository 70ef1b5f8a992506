// Package casing derives identifier casings from user-supplied component names.
// ToPascalCase splits the input into acronym, word, letter and digit tokens and
// joins them title-cased, so "my-component", "my_component" and "myComponent"
// all become "MyComponent".
package casing
