// Package constants provides a centralized location for the names and
// default values shared across the timewarp packages.
package constants

// Application identity
const (
	// AppName is the binary name and the config directory name.
	AppName = "timewarp"

	// ConfigFileName is the global config file inside the config directory.
	ConfigFileName = "config.yaml"

	// LocalConfigFileName is the per-directory config file.
	LocalConfigFileName = ".timewarp.yaml"
)

// Output literals
const (
	// ResultTrue is printed for a sample that satisfies the comparison.
	ResultTrue = "true"

	// ResultFalse is printed for a sample that does not.
	ResultFalse = "false"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
