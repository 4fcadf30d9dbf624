package completions

import (
	"fmt"
	"strings"
	"sync"

	"emojictl/pkg/catalog"

	"github.com/spf13/cobra"
)

// Completer answers shell completion requests from the catalog. The
// catalog is loaded once per completion process and held; completion
// invocations are short-lived so there is no invalidation path here.
type Completer struct {
	mu    sync.Mutex
	cache *catalog.Cache
}

func NewCompleter() *Completer {
	return &Completer{cache: catalog.New().WithBuiltin()}
}

func (c *Completer) records() []catalog.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, _ := c.cache.Load()
	return records
}

// CompleteSlugs offers catalog slugs with their display names.
func (c *Completer) CompleteSlugs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	results := []string{}
	for _, rec := range c.records() {
		if rec.Slug == "" {
			continue
		}
		if strings.HasPrefix(rec.Slug, strings.ToLower(toComplete)) {
			results = append(results, fmt.Sprintf("%s\t%s %s", rec.Slug, rec.Char, rec.Name))
		}
	}
	return results, cobra.ShellCompDirectiveNoFileComp
}

// CompleteGroups offers distinct group names.
func (c *Completer) CompleteGroups(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	seen := map[string]bool{}
	results := []string{}
	for _, rec := range c.records() {
		if rec.Group == "" || seen[rec.Group] {
			continue
		}
		seen[rec.Group] = true
		if strings.HasPrefix(rec.Group, strings.ToLower(toComplete)) {
			results = append(results, rec.Group)
		}
	}
	return results, cobra.ShellCompDirectiveNoFileComp
}

// CompleteFormat offers the output formats.
func (c *Completer) CompleteFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := []string{
		"table\tHuman-readable table",
		"json\tJSON output",
		"yaml\tYAML output",
	}

	results := []string{}
	for _, f := range formats {
		if strings.HasPrefix(f, toComplete) {
			results = append(results, f)
		}
	}
	return results, cobra.ShellCompDirectiveNoFileComp
}

// RegisterCompletions wires completion functions onto the root
// command's flags and subcommand arguments.
func RegisterCompletions(root *cobra.Command) {
	completer := NewCompleter()

	_ = root.RegisterFlagCompletionFunc("format", completer.CompleteFormat)

	for _, cmd := range root.Commands() {
		switch cmd.Name() {
		case "copy":
			cmd.ValidArgsFunction = completer.CompleteSlugs
		case "search", "groups":
			if cmd.Flags().Lookup("group-regex") != nil {
				_ = cmd.RegisterFlagCompletionFunc("group-regex", completer.CompleteGroups)
			}
			if cmd.Flags().Lookup("group-fuzzy") != nil {
				_ = cmd.RegisterFlagCompletionFunc("group-fuzzy", completer.CompleteGroups)
			}
		}
	}
}
