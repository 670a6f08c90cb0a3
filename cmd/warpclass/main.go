// Package main is the entry point for the warpclass tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/capturequest/warpclass/internal/batch"
	"github.com/capturequest/warpclass/internal/config"
	"github.com/capturequest/warpclass/internal/logger"
	"github.com/capturequest/warpclass/internal/render"
	"github.com/capturequest/warpclass/internal/store"
	"github.com/capturequest/warpclass/pkg/warp"
)

var (
	flagDump        = flag.String("dump", "", "Export the loaded dataset to a snapshot file and exit")
	flagWriteConfig = flag.Bool("writeconfig", false, "Write the default config file and exit")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagWriteConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Warp Classifier ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	dataset, err := loadDataset(cfg)
	if err != nil {
		logger.Error("failed to load dataset", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("dataset loaded",
		zap.Int("maps", len(dataset.Maps)),
		zap.Int("warps", len(dataset.Events)),
		zap.Int("blocks", len(dataset.Blocks)))

	if *flagDump != "" {
		if err := store.WriteSnapshot(*flagDump, dataset); err != nil {
			logger.Error("failed to write snapshot", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("snapshot written", zap.String("path", *flagDump))
		return
	}

	results, sum := batch.Run(dataset, dataset.Events)

	if err := writeReport(cfg, results, sum); err != nil {
		logger.Error("failed to write report", zap.Error(err))
		os.Exit(1)
	}

	if cfg.Output.Results != "" {
		if err := batch.WriteResults(cfg.Output.Results, results, sum); err != nil {
			logger.Error("failed to write results", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("results written", zap.String("path", cfg.Output.Results))
	}

	if cfg.Render.Enabled {
		if err := render.RenderAll(cfg.Render.Dir, results); err != nil {
			logger.Error("failed to render overlays", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("overlays written", zap.String("dir", cfg.Render.Dir))
	}

	logger.Info("classification complete",
		zap.Int("total", sum.Total),
		zap.Int("doors", sum.Doors),
		zap.Int("carpets", sum.Carpets),
		zap.Int("skipped", sum.Skipped))
}

// loadDataset reads the working set from the staging database when a DSN
// is configured, falling back to the snapshot file otherwise.
func loadDataset(cfg *config.Config) (*store.Dataset, error) {
	if cfg.Store.DSN != "" {
		st, err := store.Open(cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Load()
	}
	return store.ReadSnapshot(cfg.Store.Snapshot)
}

// writeReport sends the report to the configured file, or stdout when
// no file is set.
func writeReport(cfg *config.Config, results []batch.Classification, sum warp.Summary) error {
	if cfg.Output.Report == "" {
		return batch.WriteReport(os.Stdout, results, sum)
	}
	f, err := os.Create(cfg.Output.Report)
	if err != nil {
		return err
	}
	if err := batch.WriteReport(f, results, sum); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
