package app

// Config holds the per-invocation settings collected from the command line.
// Empty fields fall back to the host configuration file and its defaults.
type Config struct {
	PluginsPath string // directory of plugin source files
	ConfigPath  string // optional plughost.hcl
	Toolchain   string // external compiler binary

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns the CLI-level configuration.
func NewConfig(cfg Config) (*Config, error) {
	// Every field is optional at this level: the file loader and the
	// built-in defaults cover whatever the flags leave unset. Value
	// validation for the log flags happens in the cli package.
	return &cfg, nil
}
