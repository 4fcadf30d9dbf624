package cmd

import (
	"os"

	"emojictl/pkg/filter"
	"emojictl/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	searchGroupRegex string
	searchGroupFuzzy string
	searchNameRegex  string
	searchLimit      int
	searchCopyFirst  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the emoji catalog",
	Long: `Search the emoji catalog. The query is split on whitespace and an
emoji matches when every word is a substring of its name, slug, or
group. Without a query the full catalog is listed in file order.`,
	Example: `  # List the whole catalog
  emojictl search

  # All emojis whose metadata contains both words
  emojictl search smiling eyes

  # Narrow by group, output as JSON
  emojictl search face --group-fuzzy smileys --format json

  # Copy the first match directly
  emojictl search rocket --copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cache := newCatalogCache(cfg)
		results := cache.Search(joinQuery(args))

		recordFilter := filter.RecordFilter{
			GroupRegex: searchGroupRegex,
			GroupFuzzy: searchGroupFuzzy,
			NameRegex:  searchNameRegex,
		}
		if !recordFilter.IsZero() {
			results, err = recordFilter.Apply(results)
			if err != nil {
				return err
			}
		}

		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}

		logger.Debug().Int("count", len(results)).Msg("search results")

		if searchCopyFirst && len(results) > 0 {
			return performCopy(cfg, results[0])
		}

		output := NewOutputWriter(cmd.Flag("format").Value.String())
		if output.IsStructured() {
			return output.Write(results)
		}

		renderRecordsTable(os.Stdout, results)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchGroupRegex, "group-regex", "", "Filter results by group regex")
	searchCmd.Flags().StringVar(&searchGroupFuzzy, "group-fuzzy", "", "Filter results by fuzzy group match")
	searchCmd.Flags().StringVar(&searchNameRegex, "name-regex", "", "Filter results by name regex")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&searchCopyFirst, "copy", false, "Copy the first match to the clipboard")
}
