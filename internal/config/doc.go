// Package config resolves the effective component configuration from the
// built-in defaults, the global override file in $HOME and the project
// override file in the working directory. Override files are optional:
// absent and malformed files both degrade to an empty layer. The package also
// holds the viper-backed tool settings bound to CLI flags and environment
// variables, and an on-demand JSON Schema check of override files.
package config
