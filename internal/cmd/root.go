// Package cmd wires the command line surface to a sweep run.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osievert/cleansweep/internal/config"
	"github.com/osievert/cleansweep/internal/fs"
	"github.com/osievert/cleansweep/internal/logging"
	"github.com/osievert/cleansweep/internal/sweep"
)

const version = "0.1.0"

// NewRootCmd creates the cleansweep root command. Flags override
// values from an optional yaml config file.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "cleansweep [flags] PATH",
		Short: "cleansweep relocates old files into a per-owner quarantine area",
		Long: `cleansweep scans a directory tree in parallel and moves files whose
enabled timestamps (atime, mtime, ctime) all fall before the cutoff into
dest/<uid>/<n>, keeping a durable ledger in dest/paths.db so repeated or
interrupted runs never collide. Each owner's bucket receives a map.json
recording where every relocated file came from.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, cfgFile, args[0])
			if err != nil {
				return err
			}

			log := logging.New(cfg.Logging.Level)
			runner := sweep.New(cfg, fs.New(), log)

			if cfg.Schedule != "" {
				return sweep.NewScheduler(runner, log).Start(cmd.Context(), cfg.Schedule)
			}
			return runner.Run(cmd.Context())
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "yaml config file; flags override its values")
	f.String("dest", "", "destination path for the move")
	f.Int("num-threads", 0, "number of threads to use (default: number of cores)")
	f.Bool("dry-run", false, "only print the files that would be moved, but don't move anything")
	f.String("exclude-file", "", "file containing gitignore-style paths to exclude")
	f.Int("older", 0, "number of days old the files must be to be selected")
	f.Bool("noatime", false, "don't look at atime to determine age")
	f.Bool("nomtime", false, "don't look at mtime to determine age")
	f.Bool("noctime", false, "don't look at ctime to determine age")
	f.String("schedule", "", "cron expression; repeat the sweep on this schedule instead of running once")
	f.String("log-level", "", "log level: debug, info, error")

	return rootCmd
}

// buildConfig merges the optional config file with flag overrides and
// finalizes the result. Any failure here is fatal before a single file
// is touched.
func buildConfig(cmd *cobra.Command, cfgFile, source string) (*config.Config, error) {
	cfg := &config.Config{}
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Source = source

	f := cmd.Flags()
	if f.Changed("dest") {
		cfg.Dest, _ = f.GetString("dest")
	}
	if f.Changed("num-threads") {
		cfg.NumThreads, _ = f.GetInt("num-threads")
	}
	if f.Changed("dry-run") {
		cfg.DryRun, _ = f.GetBool("dry-run")
	}
	if f.Changed("exclude-file") {
		cfg.ExcludeFile, _ = f.GetString("exclude-file")
	}
	if f.Changed("older") {
		cfg.OlderDays, _ = f.GetInt("older")
	}
	if f.Changed("noatime") {
		cfg.NoAtime, _ = f.GetBool("noatime")
	}
	if f.Changed("nomtime") {
		cfg.NoMtime, _ = f.GetBool("nomtime")
	}
	if f.Changed("noctime") {
		cfg.NoCtime, _ = f.GetBool("noctime")
	}
	if f.Changed("schedule") {
		cfg.Schedule, _ = f.GetString("schedule")
	}
	if f.Changed("log-level") {
		cfg.Logging.Level, _ = f.GetString("log-level")
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
