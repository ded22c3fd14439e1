package config

// Configuration keys. Each maps to a YAML key in the config file and to an
// INCUBATOR_<KEY> environment variable.
const (
	KeySettings    = "settings"
	KeyTemplates   = "templates"
	KeyNPM         = "npm"
	KeySkipInstall = "skip_install"
	KeyLogLevel    = "log_level"
)

// Default value constants.
const (
	DefaultNPM      = "npm"
	DefaultLogLevel = "warn"

	// EnvPrefix is prepended to upper-cased keys for environment lookups.
	EnvPrefix = "INCUBATOR"

	// HomeDirName is the directory under the user's home that holds the
	// config file.
	HomeDirName = ".incubator"
)

// Keys returns every configuration key in display order.
func Keys() []string {
	return []string{KeySettings, KeyTemplates, KeyNPM, KeySkipInstall, KeyLogLevel}
}

// LogLevels lists the accepted log_level values.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// NewDefaultConfig returns a Config with every field at its default.
func NewDefaultConfig() *Config {
	return &Config{
		NPM:      DefaultNPM,
		LogLevel: DefaultLogLevel,
	}
}
