package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"emojictl/pkg/catalog"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatTable is the default human-readable table format
	FormatTable OutputFormat = "table"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs as YAML
	FormatYAML OutputFormat = "yaml"
)

// OutputWriter handles structured output formatting
type OutputWriter struct {
	format OutputFormat
	writer io.Writer
}

// NewOutputWriter creates a new output writer with the specified format
func NewOutputWriter(format string) *OutputWriter {
	f := OutputFormat(format)
	if f != FormatJSON && f != FormatYAML {
		f = FormatTable // default
	}
	return &OutputWriter{
		format: f,
		writer: os.Stdout,
	}
}

// SetWriter sets a custom writer (used in tests)
func (w *OutputWriter) SetWriter(writer io.Writer) {
	w.writer = writer
}

// GetFormat returns the current format
func (w *OutputWriter) GetFormat() OutputFormat {
	return w.format
}

// IsStructured returns true if the format is JSON or YAML
func (w *OutputWriter) IsStructured() bool {
	return w.format == FormatJSON || w.format == FormatYAML
}

// Write outputs the data in the configured format
func (w *OutputWriter) Write(data interface{}) error {
	switch w.format {
	case FormatJSON:
		encoder := json.NewEncoder(w.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(w.writer)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		// Table format is handled by individual commands
		return nil
	}
}

// ValidFormats returns a list of valid output formats
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}

// renderRecordsTable writes a column-aligned listing of catalog
// records.
func renderRecordsTable(w io.Writer, records []catalog.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No emojis found.")
		return
	}

	nameWidth := len("NAME")
	slugWidth := len("SLUG")
	for _, rec := range records {
		if len(rec.Name) > nameWidth {
			nameWidth = len(rec.Name)
		}
		if len(rec.Slug) > slugWidth {
			slugWidth = len(rec.Slug)
		}
	}

	fmt.Fprintf(w, "   %-*s  %-*s  %s\n", nameWidth, "NAME", slugWidth, "SLUG", "GROUP")
	for _, rec := range records {
		fmt.Fprintf(w, "%s  %-*s  %-*s  %s\n", padEmoji(rec.Char), nameWidth, rec.Name, slugWidth, rec.Slug, rec.Group)
	}
}

// padEmoji left-aligns an emoji cell; grapheme display widths vary by
// terminal, so this only normalizes the common single-emoji case.
func padEmoji(char string) string {
	if char == "" {
		return "  "
	}
	return char
}

// renderGroupsTable writes group names with their record counts.
func renderGroupsTable(w io.Writer, groups []catalog.GroupCount) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No groups found.")
		return
	}

	names := make([]string, len(groups))
	width := len("GROUP")
	for i, g := range groups {
		names[i] = g.Name
		if names[i] == "" {
			names[i] = "(ungrouped)"
		}
		if len(names[i]) > width {
			width = len(names[i])
		}
	}

	fmt.Fprintf(w, "%-*s  %s\n", width, "GROUP", "COUNT")
	for i, g := range groups {
		fmt.Fprintf(w, "%-*s  %d\n", width, names[i], g.Count)
	}
}

// joinQuery turns command args back into the search query string.
func joinQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
