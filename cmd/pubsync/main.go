// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubsync CLI. Running pubsync
// with no arguments fetches the configured researcher's ORCID works and
// rewrites the publications snapshot.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubsync/internal/logger"
	"github.com/pdiddy/pubsync/internal/orcid"
	"github.com/pdiddy/pubsync/internal/runner"
	"github.com/pdiddy/pubsync/internal/snapshot"
	"github.com/pdiddy/pubsync/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs a sync when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pubsync",
	Short: "Snapshot a researcher's ORCID publications to JSON",
	Long: `pubsync fetches a researcher's works from the ORCID public API, normalizes
and deduplicates them, sorts them newest first, and overwrites a JSON snapshot
(src/data/publications.json by default) for a site build to consume.

Every setting has a default, so a bare "pubsync" reproduces the standard run.
Settings can be overridden by flags, PUBSYNC_* environment variables, or a
pubsync.yaml config file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(viper.GetString("log_level"))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
	RunE: runSync,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pubsync.yaml or ~/.config/pubsync/pubsync.yaml)")
	pf.String("log-level", "warn", "diagnostic log level: debug, info, warn, error")
	pf.String("orcid", orcid.DefaultORCID, "ORCID iD whose works are fetched")
	pf.StringP("out", "o", snapshot.DefaultPath, "snapshot file to write or read")

	f := rootCmd.Flags()
	f.Duration("timeout", orcid.DefaultTimeout, "request timeout")
	f.String("user-agent", orcid.DefaultUserAgent, "User-Agent header sent to the registry")
	f.String("accept", orcid.DefaultAccept, "Accept header sent to the registry")
	f.String("api-base", orcid.DefaultAPIBase, "ORCID public API root")
	f.String("updated-by", snapshot.DefaultUpdatedBy, "provenance tag written to the snapshot")

	bind := map[string]string{
		"log_level":  "log-level",
		"orcid":      "orcid",
		"out":        "out",
		"timeout":    "timeout",
		"user_agent": "user-agent",
		"accept":     "accept",
		"api_base":   "api-base",
		"updated_by": "updated-by",
	}
	for key, flag := range bind {
		fl := pf.Lookup(flag)
		if fl == nil {
			fl = f.Lookup(flag)
		}
		_ = viper.BindPFlag(key, fl)
	}
}

func initConfig() {
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubsync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubsync"))
		}
	}

	viper.SetEnvPrefix("PUBSYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// syncConfig assembles the run settings from flags, env, and config file.
func syncConfig() types.SyncConfig {
	return types.SyncConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
			Accept:    viper.GetString("accept"),
		},
		ORCID:      viper.GetString("orcid"),
		APIBase:    viper.GetString("api_base"),
		OutputPath: viper.GetString("out"),
		UpdatedBy:  viper.GetString("updated_by"),
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg := syncConfig()
	if err := orcid.ValidateID(cfg.ORCID); err != nil {
		return err
	}

	sum, err := runner.Sync(cmd.Context(), orcid.NewClient(cfg), cfg)
	if err != nil {
		return err
	}
	logger.S.Infow("sync complete",
		"path", sum.Path,
		"count", sum.Count,
		"duplicates_removed", sum.DuplicatesRemoved)

	fmt.Fprintln(cmd.OutOrStdout(), sum.String())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
