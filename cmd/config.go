package cmd

import (
	"fmt"
	"os"
	"strings"

	"emojictl/pkg/catalog"
	"emojictl/pkg/config"
	"emojictl/pkg/recent"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage emojictl configuration",
	Long:  `Inspect and initialize the emojictl configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the effective configuration after file values and environment overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		catalogPaths := []string{}
		if cfg.Catalog.Path != "" {
			catalogPaths = append(catalogPaths, cfg.Catalog.Path)
		}
		catalogPaths = append(catalogPaths, catalog.DefaultPaths()...)

		recentPath := cfg.Recent.Path
		if recentPath == "" {
			if def, err := recent.DefaultPath(); err == nil {
				recentPath = def
			}
		}

		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Catalog lookup order: %s\n", strings.Join(catalogPaths, ", "))
		fmt.Printf("Builtin catalog fallback: %t\n", cfg.Catalog.UseBuiltin)
		fmt.Printf("Clipboard timeout: %ds per backend\n", cfg.Clipboard.TimeoutSeconds)
		fmt.Printf("Notifications: %t\n", cfg.Notify.Enabled)
		fmt.Printf("Recent file: %s (max %d entries)\n", recentPath, recent.Limit)

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Long:  `Write the default configuration to the per-user config file so it can be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		if IsDryRun() {
			PrintDryRun("Would write default configuration to %s", path)
			return nil
		}

		if _, err := os.Stat(path); err == nil {
			confirmed, err := ConfirmPrompt(fmt.Sprintf("Overwrite existing config at %s?", path))
			if err != nil {
				return err
			}
			if !confirmed {
				return nil
			}
		}

		if err := config.Save(config.Default()); err != nil {
			return err
		}

		fmt.Printf("Wrote default configuration to %s\n", path)
		return nil
	},
}
