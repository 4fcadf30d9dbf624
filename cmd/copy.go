package cmd

import (
	"fmt"
	"strings"

	"emojictl/pkg/catalog"
	"emojictl/pkg/clipboard"
	"emojictl/pkg/config"
	"emojictl/pkg/errors"
	"emojictl/pkg/logger"
	"emojictl/pkg/notify"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <emoji|slug|query...>",
	Short: "Copy an emoji to the clipboard",
	Long: `Copy an emoji to the system clipboard and record it in the recent
list. The argument is resolved as an exact emoji character first, then
an exact slug, then as a catalog search where the first match wins.`,
	Example: `  # Copy by emoji character
  emojictl copy 😀

  # Copy by slug
  emojictl copy thumbs_up

  # Copy the first search match
  emojictl copy party popper`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cache := newCatalogCache(cfg)
		records, _ := cache.Load()

		query := joinQuery(args)
		rec, ok := resolveEmoji(records, query)
		if !ok {
			return errors.NotFoundError(query)
		}

		return performCopy(cfg, rec)
	},
}

// resolveEmoji maps the user's argument to a catalog record: exact
// character, exact slug, then the first search match.
func resolveEmoji(records []catalog.Record, query string) (catalog.Record, bool) {
	if rec, ok := catalog.Lookup(records, query); ok {
		return rec, true
	}
	if !strings.ContainsAny(query, " \t") {
		if rec, ok := catalog.LookupSlug(records, query); ok {
			return rec, true
		}
	}

	matches := catalog.Search(records, query)
	if len(matches) > 0 {
		return matches[0], true
	}
	return catalog.Record{}, false
}

// performCopy runs the copy pipeline: clipboard, recency update,
// notification, status line. Only the clipboard step can fail the
// command; a recency write failure is logged and dropped, and a
// notification failure never surfaces past a debug log.
func performCopy(cfg *config.Config, rec catalog.Record) error {
	if IsDryRun() {
		PrintDryRun("Would copy %s (%s) to clipboard", rec.Char, rec.Name)
		return nil
	}

	if err := clipboard.WriteWithTimeout(rec.Char, clipboardTimeout(cfg)); err != nil {
		return errors.ClipboardError(err)
	}

	if store, err := newRecentStore(cfg); err != nil {
		logger.Warn().Err(err).Msg("recent list unavailable, skipping update")
	} else if err := store.Touch(rec.Char); err != nil {
		logger.Warn().Err(err).Str("char", rec.Char).Msg("failed to update recent emojis")
	}

	if cfg.Notify.Enabled && !noNotifyFlag {
		// Wait for completion; the notifier enforces its own short
		// timeout, and exiting earlier would kill the send mid-flight.
		<-notify.SendAsync(notify.NewDesktop(), "emojictl", fmt.Sprintf("Copied %s to clipboard", rec.Char))
	}

	green := color.New(color.FgGreen)
	_, _ = green.Print("✓ ")
	if rec.Name != "" {
		fmt.Printf("Copied %s (%s) to clipboard\n", rec.Char, rec.Name)
	} else {
		fmt.Printf("Copied %s to clipboard\n", rec.Char)
	}

	return nil
}
