package config

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Config is the immutable configuration for one sweep run. It is
// built once from flags (optionally seeded from a yaml file) and
// shared read-only across workers.
type Config struct {
	Source      string        `yaml:"source"`
	Dest        string        `yaml:"dest"`
	OlderDays   int           `yaml:"olderDays"`
	NoAtime     bool          `yaml:"noAtime"`
	NoMtime     bool          `yaml:"noMtime"`
	NoCtime     bool          `yaml:"noCtime"`
	DryRun      bool          `yaml:"dryRun"`
	NumThreads  int           `yaml:"numThreads"`
	ExcludeFile string        `yaml:"excludeFile"`
	Schedule    string        `yaml:"schedule"`
	Logging     LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "error"
}

// Finalize validates the config, applies defaults, and canonicalizes
// every path (absolute, symlink-free). Canonicalization failure is
// fatal for the run.
func (c *Config) Finalize() error {
	if c.Source == "" {
		return fmt.Errorf("scan path is required")
	}
	if c.Dest == "" {
		return fmt.Errorf("destination path is required")
	}
	if c.OlderDays < 0 {
		return fmt.Errorf("older days must not be negative")
	}

	var err error
	if c.Source, err = canonicalize(c.Source); err != nil {
		return fmt.Errorf("canonicalizing scan path: %w", err)
	}
	if c.Dest, err = canonicalize(c.Dest); err != nil {
		return fmt.Errorf("canonicalizing destination path: %w", err)
	}
	if c.ExcludeFile != "" {
		if c.ExcludeFile, err = canonicalize(c.ExcludeFile); err != nil {
			return fmt.Errorf("canonicalizing exclude file: %w", err)
		}
	}

	if c.NumThreads <= 0 {
		c.NumThreads = runtime.GOMAXPROCS(0)
	}
	return nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
