// Package catalog loads the emoji catalog and answers search queries
// against it. The catalog is an ordered list of records decoded from a
// JSON object mapping emoji character to metadata; file order is kept
// so listings paginate the same way on every run.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"emojictl/pkg/logger"
)

// DataFileName is the catalog file looked up next to the binary and in
// the working directory.
const DataFileName = "emoji.json"

// Record is one emoji catalog entry. Records are immutable after load.
type Record struct {
	Char  string `json:"char" yaml:"char"`
	Name  string `json:"name" yaml:"name"`
	Slug  string `json:"slug" yaml:"slug"`
	Group string `json:"group" yaml:"group"`

	// SearchText is the lowercased "name slug group" concatenation,
	// computed once at decode time and never serialized.
	SearchText string `json:"-" yaml:"-"`
}

// GroupCount is a distinct catalog group with its record count, in
// first-appearance order.
type GroupCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Cache owns the decoded catalog for the life of the process. It is an
// explicit object rather than package state so tests can inject a
// fresh cache per case.
type Cache struct {
	mu         sync.Mutex
	paths      []string
	useBuiltin bool
	records    []Record
	loaded     bool
}

// New builds a cache over the given candidate paths, tried in order.
// With no paths it falls back to DefaultPaths.
func New(paths ...string) *Cache {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	return &Cache{paths: paths}
}

// WithBuiltin enables the embedded catalog as a last resort when none
// of the candidate paths exist on disk.
func (c *Cache) WithBuiltin() *Cache {
	c.mu.Lock()
	c.useBuiltin = true
	c.mu.Unlock()
	return c
}

// DefaultPaths resolves the catalog lookup order: next to the binary,
// then the working directory.
func DefaultPaths() []string {
	paths := []string{}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), DataFileName))
	}
	return append(paths, DataFileName)
}

// Load returns the catalog, decoding it on first call and serving the
// cached slice afterwards. It fails soft: when no catalog can be read
// it caches an empty catalog and returns it together with the error,
// so callers degrade to "no results" instead of aborting.
func (c *Cache) Load() ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.records, nil
	}

	records, err := c.read()
	if err != nil {
		logger.Warn().Err(err).Msg("catalog unavailable, continuing with empty catalog")
		records = []Record{}
	}

	c.records = records
	c.loaded = true
	return c.records, err
}

// Invalidate clears the cache so the next Load re-reads the file.
// Useful when the backing file changed underneath a long-lived process.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.records = nil
	c.loaded = false
	c.mu.Unlock()
}

func (c *Cache) read() ([]Record, error) {
	for _, path := range c.paths {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to open catalog '%s': %w", path, err)
		}

		records, err := Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog '%s': %w", path, err)
		}

		logger.Debug().Str("path", path).Int("records", len(records)).Msg("catalog loaded")
		return records, nil
	}

	if c.useBuiltin {
		records, err := Decode(strings.NewReader(builtinData))
		if err != nil {
			return nil, fmt.Errorf("failed to parse builtin catalog: %w", err)
		}
		logger.Debug().Int("records", len(records)).Msg("builtin catalog loaded")
		return records, nil
	}

	return nil, fmt.Errorf("no catalog file found (looked at %s)", strings.Join(c.paths, ", "))
}

// metadata is the loosely-typed shape of a catalog entry in the data
// file; it is mapped to a Record at this boundary and goes no further.
type metadata struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Group string `json:"group"`
}

// Decode reads a JSON object of char -> {name, slug, group} and
// returns the records in file order. A plain map decode would lose the
// order, so the object is walked token by token. Duplicate characters
// keep the last value at the first-seen position; entries with an
// empty character key are skipped.
func Decode(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("catalog must be a JSON object, got %v", tok)
	}

	records := []Record{}
	index := map[string]int{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		char, _ := keyTok.(string)

		var meta metadata
		if err := dec.Decode(&meta); err != nil {
			return nil, fmt.Errorf("malformed entry for '%s': %w", char, err)
		}

		if char == "" {
			continue
		}

		rec := Record{
			Char:       char,
			Name:       meta.Name,
			Slug:       meta.Slug,
			Group:      meta.Group,
			SearchText: strings.ToLower(meta.Name + " " + meta.Slug + " " + meta.Group),
		}

		if at, seen := index[char]; seen {
			records[at] = rec
			continue
		}
		index[char] = len(records)
		records = append(records, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return records, nil
}

// Search filters records by the query: the query is split on
// whitespace, lowercased, and a record matches when every token is a
// substring of its search text. An empty or blank query returns the
// input unchanged. Order is preserved; there is no ranking.
func Search(records []Record, query string) []Record {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return records
	}

	matched := []Record{}
	for _, rec := range records {
		if matchesAll(rec.SearchText, tokens) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func matchesAll(searchText string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(searchText, token) {
			return false
		}
	}
	return true
}

// Search runs the query against the cached catalog, loading it first
// if needed.
func (c *Cache) Search(query string) []Record {
	records, _ := c.Load()
	return Search(records, query)
}

// Groups returns the distinct groups of the cached catalog with their
// record counts, ordered by first appearance.
func (c *Cache) Groups() []GroupCount {
	records, _ := c.Load()

	counts := []GroupCount{}
	index := map[string]int{}
	for _, rec := range records {
		if at, seen := index[rec.Group]; seen {
			counts[at].Count++
			continue
		}
		index[rec.Group] = len(counts)
		counts = append(counts, GroupCount{Name: rec.Group, Count: 1})
	}
	return counts
}

// Lookup finds a record by its character. The boolean reports whether
// the character exists in the catalog.
func Lookup(records []Record, char string) (Record, bool) {
	for _, rec := range records {
		if rec.Char == char {
			return rec, true
		}
	}
	return Record{}, false
}

// LookupSlug finds a record by exact slug match, case-insensitive.
func LookupSlug(records []Record, slug string) (Record, bool) {
	slug = strings.ToLower(slug)
	for _, rec := range records {
		if strings.ToLower(rec.Slug) == slug {
			return rec, true
		}
	}
	return Record{}, false
}
