// Copyright Wells Wood Research Group, 2026. All rights reserved.

// Package main is the entry point for the pda CLI, the data pipeline
// behind the protein design archive. It downloads deposited structure
// files, extracts and normalizes their metadata into catalogue records,
// and maintains a local search index over the collected catalogue.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pda CLI.
var rootCmd = &cobra.Command{
	Use:   "pda",
	Short: "Data pipeline for the protein design archive",
	Long: `pda builds the catalogue behind the protein design archive. It downloads
deposited structure files, extracts and normalizes their metadata into
design records, links each design to its neighbors, and writes the
catalogue plus a per-design diagnostics summary.

Each pipeline stage is a subcommand: acquire downloads structure files,
collect runs the metadata pipeline, and index manages the local search
index over the collected catalogue.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pda.yaml or ~/.config/pda/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pda")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pda"))
		}
	}

	viper.SetEnvPrefix("PDA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
