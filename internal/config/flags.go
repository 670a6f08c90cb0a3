package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagDSN      = flag.String("db", "", "Postgres connection string for the staging database")
	flagSnapshot = flag.String("snapshot", "", "Path to a dataset snapshot file")
	flagReport   = flag.String("report", "", "Write the report to this file instead of stdout")
	flagResults  = flag.String("results", "", "Write classification results JSON to this file")
	flagRender   = flag.String("render", "", "Write per-map overlay PNGs to this directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDSN != "" {
		cfg.Store.DSN = *flagDSN
	}
	if *flagSnapshot != "" {
		cfg.Store.Snapshot = *flagSnapshot
	}
	if *flagReport != "" {
		cfg.Output.Report = *flagReport
	}
	if *flagResults != "" {
		cfg.Output.Results = *flagResults
	}
	if *flagRender != "" {
		cfg.Render.Enabled = true
		cfg.Render.Dir = *flagRender
	}
}
