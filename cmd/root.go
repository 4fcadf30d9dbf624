package cmd

import (
	"fmt"
	"os"
	"time"

	"emojictl/pkg/catalog"
	"emojictl/pkg/completions"
	"emojictl/pkg/config"
	"emojictl/pkg/errors"
	"emojictl/pkg/logger"
	"emojictl/pkg/recent"

	"github.com/spf13/cobra"
)

const unknownValue = "unknown"

var (
	Version   string
	BuildTime string
	GitCommit string
)

var outputFormat string
var dryRunFlag bool
var assumeYesFlag bool
var noNotifyFlag bool
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "emojictl",
	Short: "Emoji picker for the terminal",
	Long: `Command-line emoji picker. Searches a local emoji catalog, copies a
chosen emoji to the system clipboard, and keeps a bounded list of the
most recently used emojis. Uses the XDG config directory for the
recency list and configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Explicit flag takes precedence over env var.
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("EMOJICTL_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		fmt.Printf("emojictl version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	// Flag completion hooks need every subcommand's flags registered,
	// so this runs after all package init functions.
	completions.RegisterCompletions(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

// loadConfig reads the effective configuration. Only a malformed
// config file is an error; a missing one yields the defaults.
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// newCatalogCache builds the catalog cache from the configuration:
// explicit path override first, then the default lookup order, with
// the embedded catalog as a last resort when permitted.
func newCatalogCache(cfg *config.Config) *catalog.Cache {
	paths := []string{}
	if cfg.Catalog.Path != "" {
		paths = append(paths, cfg.Catalog.Path)
	}
	paths = append(paths, catalog.DefaultPaths()...)

	cache := catalog.New(paths...)
	if cfg.Catalog.UseBuiltin {
		cache.WithBuiltin()
	}
	return cache
}

// newRecentStore builds the recency store from the configuration.
func newRecentStore(cfg *config.Config) (*recent.Store, error) {
	return recent.NewStore(cfg.Recent.Path)
}

// clipboardTimeout converts the configured per-attempt cap.
func clipboardTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Clipboard.TimeoutSeconds) * time.Second
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be done without making changes")
	rootCmd.PersistentFlags().BoolVarP(&assumeYesFlag, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&noNotifyFlag, "no-notify", false, "Suppress the desktop notification after copying")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal, panic)")
}
