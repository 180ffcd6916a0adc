// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gscholar CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/L04DB4L4NC3R/gscholar/internal/config"
	"github.com/L04DB4L4NC3R/gscholar/internal/httputil"
	"github.com/L04DB4L4NC3R/gscholar/internal/library"
	"github.com/L04DB4L4NC3R/gscholar/internal/logging"
	"github.com/L04DB4L4NC3R/gscholar/internal/metrics"
	"github.com/L04DB4L4NC3R/gscholar/internal/scholar"
	"github.com/L04DB4L4NC3R/gscholar/internal/secrets"
	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// State built once in PersistentPreRunE and shared by subcommands.
var (
	cfg           types.Config
	logger        = zap.NewNop()
	loadedSecrets secrets.Secrets
	registry      *prometheus.Registry
	searchMetrics *metrics.Metrics
)

// rootCmd is the base command for the gscholar CLI.
var rootCmd = &cobra.Command{
	Use:   "gscholar",
	Short: "Query Google Scholar from the command line",
	Long: `gscholar builds Google Scholar search URLs from structured query options,
fetches the results page and extracts each hit's title, author line, summary
and link.

Queries can be saved to YAML files and re-run singly or in batches. Completed
searches can optionally be archived in a local SQLite library.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c

		l, err := logging.New(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := s.Keys()
			sort.Strings(keys)
			logger.Debug("loaded secrets", zap.Strings("keys", keys))
		}

		registry = prometheus.NewRegistry()
		searchMetrics = metrics.New(registry)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gscholar.yaml or ~/.config/gscholar/gscholar.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format: table, json, yaml, csl")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gscholar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gscholar"))
		}
	}

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "reading config %s: %v\n", cfgFile, err)
	}
}

// newClient wires the HTTP fetcher, logger and metrics into a search client.
func newClient() *scholar.Client {
	fetcher := httputil.NewFetcher(cfg.HTTP, loadedSecrets.Get(secrets.ScholarCookie), logger)
	return scholar.NewClient(fetcher, logger, searchMetrics)
}

// prepare returns the spec actually sent, escaped when search.escape is set.
func prepare(spec scholar.QuerySpec) scholar.QuerySpec {
	if cfg.Search.Escape {
		return spec.Escaped()
	}
	return spec
}

// openLibrary opens the configured archive, or returns nil when archiving
// is disabled.
func openLibrary() (*library.Library, error) {
	if cfg.Library.Path == "" {
		return nil, nil
	}
	return library.Open(cfg.Library.Path)
}

// archive saves a completed search when a library is configured. Failures
// are logged and never fail the search itself.
func archive(ctx context.Context, lib *library.Library, query, url string, records []types.ResultRecord) {
	if lib == nil {
		return
	}
	id, err := lib.Save(ctx, query, url, records)
	if err != nil {
		logger.Warn("archiving search failed", zap.String("url", url), zap.Error(err))
		return
	}
	logger.Info("archived search", zap.String("run_id", id), zap.Int("records", len(records)))
}

// flushMetrics writes the run's metrics when metrics.textfile is set.
func flushMetrics() {
	if cfg.Metrics.Textfile == "" || registry == nil {
		return
	}
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); err != nil {
		logger.Warn("writing metrics textfile failed", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	flushMetrics()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
