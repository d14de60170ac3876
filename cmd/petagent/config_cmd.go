package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and routing rules",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Pet Store Agent Configuration")
	fmt.Println("=============================")
	fmt.Printf("Base URL:  %s\n", cfg.BaseURL)
	fmt.Printf("Timeout:   %s\n", cfg.Timeout())
	fmt.Printf("DB Path:   %s\n", cfg.DBPath)
	fmt.Printf("Log Path:  %s\n", cfg.LogPath)
	fmt.Printf("Rules:     %s\n", cfg.RulesPath)

	router, err := newRouter(cfg)
	if err != nil {
		return err
	}

	fmt.Println("\nRouting Rules (evaluated in order):")
	for _, rule := range router.Config().Rules {
		fmt.Printf("  - Intent:   %s\n", rule.Intent)
		if len(rule.Keywords) > 0 {
			fmt.Printf("    Keywords: %s\n", strings.Join(rule.Keywords, ", "))
		}
		if len(rule.Requires) > 0 {
			fmt.Printf("    Requires: %s\n", strings.Join(rule.Requires, ", "))
		}
		if rule.Pattern != "" {
			fmt.Printf("    Pattern:  %s\n", rule.Pattern)
		}
		if rule.Status != "" {
			fmt.Printf("    Status:   %s\n", rule.Status)
		}
	}
	fmt.Println("  - Intent:   help (fallback)")

	return nil
}
