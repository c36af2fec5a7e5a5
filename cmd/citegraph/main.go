// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citegraph CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citegraph/internal/fetch"
	"github.com/pdiddy/citegraph/internal/idconv"
	"github.com/pdiddy/citegraph/internal/secrets"
	"github.com/pdiddy/citegraph/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 350 * time.Millisecond
	defaultUserAgent = "citegraph/0.1"
	defaultDBPath    = "citegraph.db"
)

// loadedSecrets holds NCBI credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loadedSecrets[key]
}

// rootCmd is the base command for the citegraph CLI.
var rootCmd = &cobra.Command{
	Use:   "citegraph",
	Short: "Retrieve PubMed records and PMC citation relationships",
	Long: `citegraph fetches bibliographic records and citation relationships for
scholarly articles from NCBI. It extracts article metadata from PubMed
efetch XML, walks the paginated PMC cited-by listing for incoming
citations, follows the eutils link graph for outgoing ones, and
translates between the PMID, PMC, and DOI identifier namespaces.

Each operation is a subcommand: record, resolve, citedby, and outgoing.
Results print as JSON or YAML and can be cached in a local SQLite
database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citegraph.yaml or ~/.config/citegraph/config.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.PersistentFlags().Duration("delay", 0, "minimum spacing between NCBI requests (default 350ms)")
	rootCmd.PersistentFlags().String("email", "", "contact email sent to NCBI endpoints")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path for --save and store queries (default citegraph.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citegraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citegraph"))
		}
	}

	viper.SetEnvPrefix("CITEGRAPH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// fetchConfig assembles the transport settings from flags, config file,
// and loaded secrets, in that precedence order.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("http.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("http.delay")
	}
	if delay == 0 {
		delay = defaultDelay
	}

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("ncbi.email")
	}

	tool := viper.GetString("ncbi.tool")
	if tool == "" {
		tool = secretDefault("ncbi-tool", "")
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Delay:  delay,
		Tool:   tool,
		Email:  secretDefault("ncbi-email", email),
		APIKey: secretDefault("ncbi-api-key", viper.GetString("ncbi.api_key")),
	}
}

// newFetchClient builds the transport client from cfg.
func newFetchClient(cfg types.FetchConfig) *fetch.Client {
	return fetch.New(
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithDelay(cfg.Delay),
		fetch.WithHTTPClient(newHTTPClient(cfg)),
	)
}

func newHTTPClient(cfg types.FetchConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// newResolver builds an identifier resolver sharing the transport client.
func newResolver(client *fetch.Client, cfg types.FetchConfig) *idconv.Resolver {
	return &idconv.Resolver{
		Fetch:  client,
		Tool:   cfg.Tool,
		Email:  cfg.Email,
		APIKey: cfg.APIKey,
	}
}

func dbPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("store.db_path")
	}
	if path == "" {
		path = defaultDBPath
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
