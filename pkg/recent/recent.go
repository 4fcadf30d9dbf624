// Package recent persists the bounded most-recently-used emoji list.
// The list is a JSON array of emoji characters, most recent first,
// rewritten in full after every mutation. Two concurrent processes
// doing a load-mutate-save cycle race with last-write-wins semantics;
// that is accepted for a single-user desktop tool and not locked
// against.
package recent

import (
	"encoding/json"
	"os"
	"path/filepath"

	"emojictl/pkg/errors"
	"emojictl/pkg/logger"
)

// Limit caps the recency list after any mutation.
const Limit = 20

// FileName is the recency file under the per-user config directory.
const FileName = "recent_emojis.json"

// Store reads and writes the recency list at a fixed path.
type Store struct {
	path string
}

// NewStore builds a store over the given file path. An empty path
// falls back to the per-user default.
func NewStore(path string) (*Store, error) {
	if path == "" {
		def, err := DefaultPath()
		if err != nil {
			return nil, errors.NewWithError(errors.ExitCodePersistence, "failed to resolve recency file path", err)
		}
		path = def
	}
	return &Store{path: path}, nil
}

// DefaultPath returns <user-config-dir>/emojictl/recent_emojis.json.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "emojictl", FileName), nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted list. A missing or unparsable file yields
// an empty list, never an error: recency is a convenience, not state
// worth failing over. Hand-edited files are normalized back to the
// no-duplicates, length-capped invariant.
func (s *Store) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("path", s.path).Msg("failed to read recent emojis")
		}
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		logger.Debug().Err(err).Str("path", s.path).Msg("failed to parse recent emojis")
		return []string{}
	}

	return normalize(list)
}

// RecordUse returns a new list with char moved to the front: removed
// from its old position if present, never duplicated, truncated to
// Limit. Pure transformation; persistence is Save's job.
func RecordUse(list []string, char string) []string {
	result := make([]string, 0, len(list)+1)
	result = append(result, char)
	for _, c := range list {
		if c != char {
			result = append(result, c)
		}
	}
	if len(result) > Limit {
		result = result[:Limit]
	}
	return result
}

// Save writes the list as an indented JSON array, fully replacing the
// previous contents so the file never mixes old and new state. The
// containing directory is created if absent.
func (s *Store) Save(list []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.PersistenceError(err)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return errors.PersistenceError(err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.PersistenceError(err)
	}

	return nil
}

// Touch runs the load-mutate-save cycle for one successful copy.
func (s *Store) Touch(char string) error {
	return s.Save(RecordUse(s.Load(), char))
}

// Clear removes the recency file. A file that was never created is
// already clear.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.PersistenceError(err)
	}
	return nil
}

func normalize(list []string) []string {
	seen := map[string]bool{}
	result := make([]string, 0, len(list))
	for _, c := range list {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		result = append(result, c)
		if len(result) == Limit {
			break
		}
	}
	return result
}
