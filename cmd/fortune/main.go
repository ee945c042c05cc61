// Command fortune simulates how talent and luck shape capital across a population.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/fortune/internal/config"
	"github.com/talgya/fortune/internal/logging"
	"github.com/talgya/fortune/internal/persistence"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fortune",
		Short: "Talent versus luck capital simulator",
		Long: `fortune evolves the capital of a population under random lucky and
unlucky events, optionally with wealth-dependent luck, progressive
taxation, and a safety net, and reports who ends up rich.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			if level == "" {
				level = os.Getenv("FORTUNE_LOG_LEVEL")
			}
			slog.SetDefault(logging.NewLogger(level, cmd.ErrOrStderr()))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("db", "", "SQLite run archive path (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newRunsCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fortune version %s\n", version)
			return nil
		},
	}
}

// loadConfig reads the configuration, applies simulation flag overrides and
// validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := applySimFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// readConfig reads --config (or FORTUNE_CONFIG), sets up logging and applies
// --db. Simulation parameters are not validated, so archive commands work
// with any config file that parses.
func readConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("FORTUNE_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// --log-level wins; otherwise the config (and FORTUNE_LOG_LEVEL) decides.
	if !cmd.Flags().Changed("log-level") {
		slog.SetDefault(logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()))
	}
	if cmd.Flags().Changed("db") {
		cfg.Database.Path, _ = cmd.Flags().GetString("db")
	}
	return cfg, nil
}

// openArchive opens the run archive, or returns nil when none is configured.
func openArchive(cfg *config.Config) (*persistence.DB, error) {
	if cfg.Database.Path == "" {
		return nil, nil
	}
	db, err := persistence.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open run archive: %w", err)
	}
	slog.Debug("run archive opened", "path", cfg.Database.Path)
	return db, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
