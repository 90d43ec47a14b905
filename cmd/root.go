// Package cmd holds the command-line entry points.
package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/config"
	"github.com/jsinelofficial/metamask-dashboard/dashboard"
	"github.com/jsinelofficial/metamask-dashboard/intel"
	appLogger "github.com/jsinelofficial/metamask-dashboard/logger"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "cidash",
	Short: "Competitive intelligence dashboard for wallet competitors",
	Long: `cidash tracks competitor wallet activity on Twitter, classifies each post
as a partnership, campaign or content, scores its impact and serves a
filterable dashboard plus a proxy to the upstream tweet API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing config.yaml")
	rootCmd.AddCommand(serveCmd, snapshotCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// setup loads config and initializes logging for a subcommand.
// An unusable config exits the process.
func setup() config.Config {
	cfg := config.MustLoadConfig(configDir)
	appLogger.Initialize(cfg.Logging.Level, cfg.Logging.Pretty)
	return cfg
}

// newDashboard wires the configured source and pipeline into a dashboard
func newDashboard(cfg config.Config) (*dashboard.Dashboard, error) {
	var source dashboard.Source
	switch cfg.Dashboard.Mode {
	case "live":
		source = dashboard.NewProxySource(cfg.Dashboard.ProxyURL, &http.Client{})
	case "static":
		s, err := dashboard.NewStaticSource(time.Now())
		if err != nil {
			return nil, err
		}
		source = s
	default:
		return nil, fmt.Errorf("unknown dashboard mode %q", cfg.Dashboard.Mode)
	}

	pipeline := intel.NewPipeline(intel.NewClassifier(cfg.Classifier), cfg.Dashboard.AlertExcerptLen, time.Now)
	return dashboard.New(cfg.Competitors, source, pipeline), nil
}
