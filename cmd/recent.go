package cmd

import (
	"fmt"
	"os"
	"strconv"

	"emojictl/pkg/catalog"

	"github.com/spf13/cobra"
)

var recentWatchInterval int

// RecentOutput is one recent-list entry enriched with catalog
// metadata for structured output.
type RecentOutput struct {
	Position int    `json:"position" yaml:"position"`
	Char     string `json:"char" yaml:"char"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Slug     string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Group    string `json:"group,omitempty" yaml:"group,omitempty"`
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently copied emojis",
	Long: `Show the most recently copied emojis, newest first. The list holds at
most 20 entries and is updated on every successful copy.`,
	Example: `  # Show the recent list
  emojictl recent

  # Re-render every 2 seconds
  emojictl recent --watch 2

  # Clear the list
  emojictl recent clear --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := newRecentStore(cfg)
		if err != nil {
			return err
		}

		cache := newCatalogCache(cfg)
		records, _ := cache.Load()

		render := func() error {
			entries := recentEntries(store.Load(), records)

			output := NewOutputWriter(cmd.Flag("format").Value.String())
			if output.IsStructured() {
				return output.Write(entries)
			}

			renderRecentTable(entries)
			return nil
		}

		if recentWatchInterval > 0 {
			return RunWatch(WatchConfig{
				IntervalSec: recentWatchInterval,
				RefreshFunc: render,
				ClearScreen: ClearScreen,
			})
		}

		return render()
	},
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recent emoji list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := newRecentStore(cfg)
		if err != nil {
			return err
		}

		list := store.Load()
		confirmed, err := ConfirmDestructive("clear the recent emoji list", map[string]string{
			"File":    store.Path(),
			"Entries": strconv.Itoa(len(list)),
		})
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}

		if err := store.Clear(); err != nil {
			return err
		}

		fmt.Println("Recent emoji list cleared.")
		return nil
	},
}

func recentEntries(list []string, records []catalog.Record) []RecentOutput {
	entries := make([]RecentOutput, 0, len(list))
	for i, char := range list {
		entry := RecentOutput{Position: i + 1, Char: char}
		if rec, ok := catalog.Lookup(records, char); ok {
			entry.Name = rec.Name
			entry.Slug = rec.Slug
			entry.Group = rec.Group
		}
		entries = append(entries, entry)
	}
	return entries
}

func renderRecentTable(entries []RecentOutput) {
	if len(entries) == 0 {
		fmt.Println("No recent emojis.")
		return
	}

	for _, e := range entries {
		if e.Name != "" {
			fmt.Fprintf(os.Stdout, "%2d. %s  %s\n", e.Position, e.Char, e.Name)
		} else {
			fmt.Fprintf(os.Stdout, "%2d. %s\n", e.Position, e.Char)
		}
	}
}

func init() {
	recentCmd.Flags().IntVar(&recentWatchInterval, "watch", 0, "Re-render every N seconds (0 = once)")
}
