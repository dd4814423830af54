package config

// Model is the unified representation of the host configuration.
type Model struct {
	// ToolchainPath is the external compiler binary invoked for builds.
	ToolchainPath string
	// PluginsPath is the directory searched for plugin source files.
	PluginsPath string

	LogLevel  string
	LogFormat string

	// Samples are the placeholder argument values synthesized per call.
	Samples Samples
}

// Samples holds the synthesized argument values fed to invoked plugins.
type Samples struct {
	Str string
	U64 uint64
}

// Default returns the built-in host configuration.
func Default() *Model {
	return &Model{
		ToolchainPath: "roc",
		PluginsPath:   "plugins",
		LogLevel:      "info",
		LogFormat:     "text",
		Samples:       Samples{Str: "foo", U64: 42},
	}
}
