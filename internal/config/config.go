// Package config handles classifier configuration loading and management.
package config

// Config holds all classifier settings.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects where the dataset comes from. A non-empty DSN picks
// the staging database; otherwise the JSON snapshot is read.
type StoreConfig struct {
	DSN      string `yaml:"dsn"`      // Postgres connection string
	Snapshot string `yaml:"snapshot"` // dataset snapshot path
}

// OutputConfig holds the result destinations.
type OutputConfig struct {
	Report  string `yaml:"report"`  // report file; empty writes to stdout
	Results string `yaml:"results"` // results JSON file; empty disables
}

// RenderConfig holds overlay rendering settings.
type RenderConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			DSN:      "",
			Snapshot: "dataset.json",
		},
		Output: OutputConfig{
			Report:  "",
			Results: "",
		},
		Render: RenderConfig{
			Enabled: false,
			Dir:     "overlays",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
