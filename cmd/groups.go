package cmd

import (
	"os"

	"emojictl/pkg/catalog"
	"emojictl/pkg/filter"

	"github.com/spf13/cobra"
)

var (
	groupsFilterRegex string
	groupsFilterFuzzy string
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List emoji groups",
	Long:  `List the distinct emoji groups in the catalog with their record counts.`,
	Example: `  # List all groups
  emojictl groups

  # Filter groups by fuzzy match
  emojictl groups --filter-fuzzy smileys

  # Output as YAML
  emojictl groups --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cache := newCatalogCache(cfg)
		groups, err := filterGroups(cache.Groups())
		if err != nil {
			return err
		}

		output := NewOutputWriter(cmd.Flag("format").Value.String())
		if output.IsStructured() {
			return output.Write(groups)
		}

		renderGroupsTable(os.Stdout, groups)
		return nil
	},
}

func filterGroups(groups []catalog.GroupCount) ([]catalog.GroupCount, error) {
	if groupsFilterRegex == "" && groupsFilterFuzzy == "" {
		return groups, nil
	}

	var regexFilter *filter.StringFilter
	if groupsFilterRegex != "" {
		f, err := filter.NewStringFilter(groupsFilterRegex, filter.FilterModeRegex)
		if err != nil {
			return nil, err
		}
		regexFilter = f
	}

	filtered := []catalog.GroupCount{}
	for _, g := range groups {
		if regexFilter != nil && !regexFilter.Match(g.Name) {
			continue
		}
		if groupsFilterFuzzy != "" && !filter.FuzzyMatch(groupsFilterFuzzy, g.Name) {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered, nil
}

func init() {
	groupsCmd.Flags().StringVar(&groupsFilterRegex, "filter-regex", "", "Filter group names by regex pattern")
	groupsCmd.Flags().StringVar(&groupsFilterFuzzy, "filter-fuzzy", "", "Filter group names by fuzzy match")
}
