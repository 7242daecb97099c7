// ABOUTME: Root Cobra command for healthsum CLI.
// ABOUTME: Handles config loading, logger setup, and storage lifecycle.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/namtonthat/healthsum/internal/config"
	"github.com/namtonthat/healthsum/internal/storage"
)

var (
	flagConfig  string
	flagDB      string
	flagVerbose bool

	cfg    *config.Config
	logger *zap.Logger
	repo   storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "healthsum",
	Short: "Derive daily health summaries from raw export files",
	Long: `Healthsum turns raw Apple Health and AutoSleep CSV exports into one
deduplicated summary row per day, plus trailing weekly averages.

PIPELINE:

  Raw CSV rows are normalized to canonical metric names, deduplicated
  (last ingested value wins), joined per day with wearable sleep data
  taking precedence over the general export, and enriched with derived
  metrics: calories from macros, sleep efficiency, active/mindful day
  flags.

QUICK START:

  $ healthsum summarize ./exports        # Rebuild summaries from a directory of CSVs
  $ healthsum show                       # See recent daily summaries
  $ healthsum show --weekly              # See trailing 7-day averages
  $ healthsum dots 500 83 male           # Score a powerlifting total
  $ healthsum e1rm 150 3                 # Estimate a one-rep max

MCP INTEGRATION:

  Run 'healthsum mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "healthsum": { "command": "healthsum", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Summaries are stored in SQLite at ~/.local/share/healthsum/healthsum.db.
  Every summarize run rebuilds both tables from scratch, so re-running on
  the same exports always produces the same rows.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		logger, err = newLogger(flagVerbose)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			if err := repo.Close(); err != nil {
				return err
			}
			repo = nil
		}
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to SQLite database (default ~/.local/share/healthsum/healthsum.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// openRepo opens the summary store for commands that need it. The MCP
// server talks over stdout, so logs go to stderr only.
func openRepo() (storage.Repository, error) {
	if repo != nil {
		return repo, nil
	}
	path := flagDB
	if path == "" {
		path = storage.DefaultDBPath()
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	repo = db
	return repo, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return zcfg.Build()
}
