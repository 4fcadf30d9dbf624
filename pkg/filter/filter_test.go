package filter

import (
	"strings"
	"testing"

	"emojictl/pkg/catalog"
)

func TestNewStringFilter(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		mode      FilterMode
		wantErr   bool
		errString string
	}{
		{
			name:    "valid exact filter",
			pattern: "smileys",
			mode:    FilterModeExact,
			wantErr: false,
		},
		{
			name:    "valid contains filter",
			pattern: "smile",
			mode:    FilterModeContains,
			wantErr: false,
		},
		{
			name:    "valid regex filter",
			pattern: "^smileys",
			mode:    FilterModeRegex,
			wantErr: false,
		},
		{
			name:      "invalid regex filter",
			pattern:   "[invalid(",
			mode:      FilterModeRegex,
			wantErr:   true,
			errString: "invalid regex pattern",
		},
		{
			name:    "valid fuzzy filter",
			pattern: "smly",
			mode:    FilterModeFuzzy,
			wantErr: false,
		},
		{
			name:    "none mode",
			pattern: "",
			mode:    FilterModeNone,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewStringFilter(tt.pattern, tt.mode)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewStringFilter() expected error, got nil")
				}
				if tt.errString != "" && err != nil && !strings.Contains(err.Error(), tt.errString) {
					t.Errorf("NewStringFilter() error = %v, want containing %v", err, tt.errString)
				}
			} else {
				if err != nil {
					t.Errorf("NewStringFilter() unexpected error = %v", err)
				}
				if f == nil {
					t.Error("NewStringFilter() returned nil filter")
				}
			}
		})
	}
}

func TestStringFilter_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    FilterMode
		input   string
		want    bool
	}{
		{name: "none matches everything", pattern: "", mode: FilterModeNone, input: "anything", want: true},
		{name: "exact match", pattern: "smileys", mode: FilterModeExact, input: "Smileys", want: true},
		{name: "exact mismatch", pattern: "smileys", mode: FilterModeExact, input: "smileys & emotion", want: false},
		{name: "contains match", pattern: "SMILE", mode: FilterModeContains, input: "smileys & emotion", want: true},
		{name: "contains mismatch", pattern: "travel", mode: FilterModeContains, input: "smileys", want: false},
		{name: "regex match", pattern: "^smileys", mode: FilterModeRegex, input: "smileys & emotion", want: true},
		{name: "regex mismatch", pattern: "^emotion", mode: FilterModeRegex, input: "smileys & emotion", want: false},
		{name: "fuzzy match", pattern: "smn", mode: FilterModeFuzzy, input: "smileys & emotion", want: true},
		{name: "fuzzy mismatch", pattern: "xyz", mode: FilterModeFuzzy, input: "smileys", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewStringFilter(tt.pattern, tt.mode)
			if err != nil {
				t.Fatalf("NewStringFilter() returned error: %v", err)
			}
			if got := f.Match(tt.input); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{pattern: "", text: "anything", want: true},
		{pattern: "abc", text: "", want: false},
		{pattern: "face", text: "grinning face", want: true},
		{pattern: "gfc", text: "grinning_face", want: true},
		{pattern: "FACE", text: "grinning face", want: true},
		{pattern: "facez", text: "grinning face", want: false},
		{pattern: "ecaf", text: "face", want: false},
	}

	for _, tt := range tests {
		if got := FuzzyMatch(tt.pattern, tt.text); got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
		}
	}
}

func testRecords() []catalog.Record {
	return []catalog.Record{
		{Char: "😀", Name: "grinning face", Slug: "grinning_face", Group: "smileys & emotion"},
		{Char: "🚗", Name: "automobile", Slug: "automobile", Group: "travel & places"},
		{Char: "🔥", Name: "fire", Slug: "fire", Group: "symbols"},
	}
}

func TestRecordFilter_Apply(t *testing.T) {
	tests := []struct {
		name    string
		f       RecordFilter
		want    []string
		wantErr bool
	}{
		{
			name: "zero filter passes all",
			f:    RecordFilter{},
			want: []string{"😀", "🚗", "🔥"},
		},
		{
			name: "group regex",
			f:    RecordFilter{GroupRegex: "^smileys"},
			want: []string{"😀"},
		},
		{
			name: "group fuzzy",
			f:    RecordFilter{GroupFuzzy: "trvl"},
			want: []string{"🚗"},
		},
		{
			name: "name regex",
			f:    RecordFilter{NameRegex: "face$"},
			want: []string{"😀"},
		},
		{
			name: "combined predicates",
			f:    RecordFilter{GroupFuzzy: "symbols", NameRegex: "^fire"},
			want: []string{"🔥"},
		},
		{
			name:    "invalid group regex",
			f:       RecordFilter{GroupRegex: "[bad("},
			wantErr: true,
		},
		{
			name:    "invalid name regex",
			f:       RecordFilter{NameRegex: "[bad("},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.Apply(testRecords())
			if tt.wantErr {
				if err == nil {
					t.Error("Apply() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply() returned error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Apply() returned %d records, want %d", len(got), len(tt.want))
			}
			for i, char := range tt.want {
				if got[i].Char != char {
					t.Errorf("Result %d = '%s', want '%s'", i, got[i].Char, char)
				}
			}
		})
	}
}

func TestRecordFilter_IsZero(t *testing.T) {
	if !(&RecordFilter{}).IsZero() {
		t.Error("Expected zero filter to report IsZero")
	}
	if (&RecordFilter{GroupFuzzy: "x"}).IsZero() {
		t.Error("Expected configured filter to not report IsZero")
	}
}
