package cmd

import (
	"testing"

	"emojictl/pkg/catalog"
)

func testCatalog() []catalog.Record {
	return []catalog.Record{
		{Char: "😀", Name: "grinning face", Slug: "grinning_face", Group: "smileys", SearchText: "grinning face grinning_face smileys"},
		{Char: "🚗", Name: "automobile", Slug: "automobile", Group: "travel", SearchText: "automobile automobile travel"},
		{Char: "🚀", Name: "rocket", Slug: "rocket", Group: "travel", SearchText: "rocket rocket travel"},
	}
}

func TestResolveEmoji(t *testing.T) {
	records := testCatalog()

	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{name: "exact char", query: "🚗", want: "🚗", found: true},
		{name: "exact slug", query: "grinning_face", want: "😀", found: true},
		{name: "slug case insensitive", query: "ROCKET", want: "🚀", found: true},
		{name: "search first match", query: "travel", want: "🚗", found: true},
		{name: "multi word search", query: "grinning smileys", want: "😀", found: true},
		{name: "no match", query: "zzz", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := resolveEmoji(records, tt.query)
			if ok != tt.found {
				t.Fatalf("resolveEmoji(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if tt.found && rec.Char != tt.want {
				t.Errorf("resolveEmoji(%q) = '%s', want '%s'", tt.query, rec.Char, tt.want)
			}
		})
	}
}

func TestRecentEntries(t *testing.T) {
	entries := recentEntries([]string{"🚀", "🦖"}, testCatalog())

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Position != 1 || entries[0].Char != "🚀" || entries[0].Name != "rocket" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	// Characters absent from the catalog keep their position with bare metadata.
	if entries[1].Position != 2 || entries[1].Char != "🦖" || entries[1].Name != "" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}
