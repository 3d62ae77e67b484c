package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loupe-labs/loupe/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Loupe configuration",
	Long: `Manage Loupe configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (LOUPE_*)
3. Config file (~/.loupe/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration: built-in defaults overlaid with the config file, environment variables, and flags.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a documented default configuration file",
	Long:  `Create ~/.loupe/config.yaml populated with the built-in defaults and comments explaining the override order.`,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if file := viper.ConfigFileUsed(); file != "" {
		fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", file)
	} else {
		fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
	}

	rendered, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	banner(os.Stdout, "Current Configuration")
	fmt.Println()
	fmt.Print(string(rendered))
	fmt.Println()
	fmt.Println("Override order, strongest first: flags, LOUPE_* environment")
	fmt.Println("variables, ~/.loupe/config.yaml, built-in defaults.")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("find home directory: %w", err)
	}
	configDir := filepath.Join(home, ".loupe")
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s\nUse 'loupe config show' to view it, or delete it first to recreate", configPath)
	}

	rendered, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# Loupe configuration\n")
	buf.WriteString("# Override order, strongest first: flags, LOUPE_* environment\n")
	buf.WriteString("# variables, this file, built-in defaults.\n\n")
	buf.Write(rendered)
	buf.WriteString("\n# The cache is memory-only unless cache.dir points somewhere, e.g.:\n")
	buf.WriteString("#   cache:\n")
	buf.WriteString("#     dir: ~/.loupe/cache\n")
	buf.WriteString("#     ttl: 24h\n")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configPath)
	fmt.Printf("\nReview it with 'loupe config show' or edit it directly:\n")
	fmt.Printf("  $EDITOR %s\n", configPath)
	return nil
}
