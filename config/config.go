// Package config provides run configuration and TOML parsing.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the resolved configuration for one report run.
type Config struct {
	InputDir  string
	OutputDir string
	StorePath string
	Workers   int
	Cache     bool

	// UseFilenameAsSampleName keeps raw file names as sample
	// identifiers. Summary and report files can then no longer be
	// joined reliably; reconciliation reports this once per batch.
	UseFilenameAsSampleName bool
}

func Default() Config {
	return Config{
		InputDir:                ".",
		OutputDir:               ".",
		StorePath:               "",
		Workers:                 runtime.NumCPU(),
		Cache:                   true,
		UseFilenameAsSampleName: false,
	}
}

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Report ReportConfig `toml:"report"`
}

// ReportConfig maps report-related settings; nil means unset.
type ReportConfig struct {
	InputDir                *string `toml:"input-dir"`
	OutputDir               *string `toml:"output-dir"`
	StorePath               *string `toml:"store-path"`
	Workers                 *int    `toml:"workers"`
	Cache                   *bool   `toml:"cache"`
	UseFilenameAsSampleName *bool   `toml:"fn-as-s-name"`
}

// LoadFile reads a TOML config from the given path. Missing file is not
// an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays the file settings onto c and returns the result.
func (c Config) Apply(fc FileConfig) Config {
	if fc.Report.InputDir != nil {
		c.InputDir = *fc.Report.InputDir
	}
	if fc.Report.OutputDir != nil {
		c.OutputDir = *fc.Report.OutputDir
	}
	if fc.Report.StorePath != nil {
		c.StorePath = *fc.Report.StorePath
	}
	if fc.Report.Workers != nil {
		c.Workers = *fc.Report.Workers
	}
	if fc.Report.Cache != nil {
		c.Cache = *fc.Report.Cache
	}
	if fc.Report.UseFilenameAsSampleName != nil {
		c.UseFilenameAsSampleName = *fc.Report.UseFilenameAsSampleName
	}
	return c
}
