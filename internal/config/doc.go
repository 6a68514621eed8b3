// Package config provides project configuration loading for readmegen.
//
// # Configuration File
//
// An optional .readmegen.toml at the project root tunes generation:
//
//	[render]
//	layout = "extended"       # or "minimal"
//
//	[license]
//	default = "MIT"
//	scanner = "node_modules"  # or "license-checker"
//	prefer_manifest = true
//
//	[languages]
//	exclude = ["*.lock"]
//
// A missing file yields Default(). Unknown keys are rejected so typos do not
// silently fall back to defaults.
//
// # Validation
//
// Config implements Validate() to check enumerated values and glob syntax.
// Load validates automatically after decoding.
package config
