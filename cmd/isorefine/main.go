// Package main provides the CLI entrypoint for isorefine.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"isorefine/config"
)

var (
	flagConfig    string
	flagInputDir  string
	flagOutputDir string
	flagStorePath string
	flagWorkers   int
	flagNoCache   bool
	flagFnAsSName bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "isorefine",
		Short:        "Aggregate Iso-Seq refine logs into a per-sample report",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runReport(cfg, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "isorefine.toml", "path to TOML config file")
	rootCmd.Flags().StringVarP(&flagInputDir, "input", "i", ".", "directory to scan for refine log files")
	rootCmd.Flags().StringVarP(&flagOutputDir, "output", "o", ".", "directory for the report data file")
	rootCmd.Flags().StringVar(&flagStorePath, "store", "", "optional badger store path for merged records")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "per-sample fold workers (0 = one per CPU)")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable the report store read cache")
	rootCmd.Flags().BoolVar(&flagFnAsSName, "fn-as-s-name", false, "use raw file names as sample names")

	return rootCmd
}

// resolveConfig overlays the TOML file onto defaults, then explicit
// flags onto both.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	fileCfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	cfg := config.Default().Apply(fileCfg)

	if cmd.Flags().Changed("input") {
		cfg.InputDir = flagInputDir
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = flagOutputDir
	}
	if cmd.Flags().Changed("store") {
		cfg.StorePath = flagStorePath
	}
	if cmd.Flags().Changed("workers") && flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
	if flagNoCache {
		cfg.Cache = false
	}
	if flagFnAsSName {
		cfg.UseFilenameAsSampleName = true
	}
	return cfg, nil
}
