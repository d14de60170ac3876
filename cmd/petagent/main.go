package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fentz26/petstore-agent/internal/agent"
	"github.com/fentz26/petstore-agent/internal/config"
	"github.com/fentz26/petstore-agent/internal/intent"
	"github.com/fentz26/petstore-agent/internal/logger"
	"github.com/fentz26/petstore-agent/internal/petstore"
	"github.com/fentz26/petstore-agent/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "petagent",
	Short: "petagent - pet store prompt agent",
	Long:  `petagent routes natural-language prompts to pet store API queries and prints decorated console responses.`,
	// No RunE - defaults to showing help when no subcommand is provided
}

var (
	cfgPath string
	offline bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "use fixture data instead of the live API")

	// Add subcommands
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(petsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mockCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file named by --config.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgPath)
}

// newAPI returns the fixture client when --offline is set, the HTTP client
// otherwise.
func newAPI(cfg *config.Config) petstore.API {
	if offline {
		return petstore.NewFixtureClient()
	}
	return petstore.NewClient(cfg.BaseURL, cfg.Timeout())
}

// newRouter builds the keyword router from the configured rules file.
func newRouter(cfg *config.Config) (*intent.KeywordRouter, error) {
	rules, err := intent.LoadConfig(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return intent.NewRouter(rules), nil
}

// newAgent assembles the full agent with history and logging. The returned
// cleanup closes the history store and flushes the log.
func newAgent() (*agent.Agent, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	router, err := newRouter(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogPath)
	if err != nil {
		// A broken log file shouldn't block the demo.
		log = logger.Nop()
	}

	history, err := store.New(cfg.DBPath)
	if err != nil {
		log.Warn("history store unavailable", zap.Error(err))
		history = nil
	}

	cleanup := func() {
		if history != nil {
			history.Close()
		}
		_ = log.Sync()
	}

	return agent.New(newAPI(cfg), router, history, log), cfg, cleanup, nil
}
