package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/endf/endf"
)

// Config is the optional config file. Pointer fields distinguish "not set"
// from zero values; flags given on the command line win over the file.
type Config struct {
	Verbosity     *int   `yaml:"verbosity"`
	LogFile       string `yaml:"log_file"`
	StrictColumns *bool  `yaml:"strict_columns"`
	SequenceCheck *bool  `yaml:"sequence_check"`
	Workers       *int   `yaml:"workers"`
	Format        string `yaml:"format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "endf", "config.yaml")
}

// loadConfig reads path. A missing file at the default location is an empty
// config; a missing file named explicitly is an error.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// app holds the global flags shared by all subcommands.
type app struct {
	configPath    string
	verbose       int
	logFile       string
	strict        bool
	sequenceCheck bool
	workers       int
	format        string
}

func (a *app) configure(cmd *cobra.Command) error {
	path, explicit := a.configPath, a.configPath != ""
	if !explicit {
		path = configPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	a.apply(cmd, cfg)
	return nil
}

func (a *app) apply(cmd *cobra.Command, cfg Config) {
	flags := cmd.Flags()
	if cfg.Verbosity != nil && !flags.Changed("verbose") {
		a.verbose = *cfg.Verbosity
	}
	if cfg.LogFile != "" && !flags.Changed("log-file") {
		a.logFile = cfg.LogFile
	}
	if cfg.StrictColumns != nil && !flags.Changed("strict") {
		a.strict = *cfg.StrictColumns
	}
	if cfg.SequenceCheck != nil && !flags.Changed("sequence-check") {
		a.sequenceCheck = *cfg.SequenceCheck
	}
	if cfg.Workers != nil && !flags.Changed("workers") {
		a.workers = *cfg.Workers
	}
	if cfg.Format != "" && flags.Lookup("format") != nil && !flags.Changed("format") {
		a.format = cfg.Format
	}
}

// options turns the global flags into decoder options for path.
func (a *app) options(path string) []endf.Option {
	var opts []endf.Option
	if path != "" {
		opts = append(opts, endf.WithFile(path))
	}
	if a.strict {
		opts = append(opts, endf.WithStrictColumns())
	}
	if a.sequenceCheck {
		opts = append(opts, endf.WithSequenceCheck())
	}
	return opts
}
