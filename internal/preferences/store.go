// Package preferences holds the user's per-category settings and the
// algorithm mix, persisted through a durable key-value collaborator so they
// survive restarts.
package preferences

import (
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
)

// ErrKeyNotFound is returned by a KV when the key has never been written.
var ErrKeyNotFound = errors.New("preferences: key not found")

// KV is the durable key-value collaborator: synchronous get/set of
// string-keyed entries.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

const storageKey = "preferences:v1"

// Store owns the in-memory preference snapshot exclusively. Every mutation
// synchronously persists the full mapping and the mix value.
type Store struct {
	kv     KV
	logger zerolog.Logger

	mu      sync.RWMutex
	current models.PreferenceSet
}

// NewStore loads persisted preferences, falling back to the hard-coded
// defaults when nothing is stored or the stored blob cannot be parsed.
// Corruption is logged and recovered from, never fatal.
func NewStore(kv KV, logger zerolog.Logger) *Store {
	s := &Store{kv: kv, logger: logger}
	s.current = s.load()
	return s
}

func (s *Store) load() models.PreferenceSet {
	data, err := s.kv.Get(storageKey)
	if errors.Is(err, ErrKeyNotFound) {
		return models.DefaultPreferences()
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("reading stored preferences failed, using defaults")
		return models.DefaultPreferences()
	}

	var stored models.PreferenceSet
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Warn().Err(err).Msg("stored preferences unparseable, using defaults")
		return models.DefaultPreferences()
	}
	if stored.Entries == nil {
		stored.Entries = make(map[constants.Category]models.PreferenceEntry)
	}
	return stored
}

// Get returns a copy of the current preference set.
func (s *Store) Get() models.PreferenceSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make(map[constants.Category]models.PreferenceEntry, len(s.current.Entries))
	for category, entry := range s.current.Entries {
		entries[category] = entry
	}
	return models.PreferenceSet{Entries: entries, AlgorithmMix: s.current.AlgorithmMix}
}

// SetPreference overwrites the entry for one category, creating it if absent
// and leaving all others untouched. Priority is expected in 0-100.
func (s *Store) SetPreference(category constants.Category, enabled bool, priority int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Entries[category] = models.PreferenceEntry{
		Category: category,
		Enabled:  enabled,
		Priority: priority,
	}
	return s.persistLocked()
}

// SetAlgorithmMix stores the preference/randomness blend. Expected in 0-100;
// the store documents the contract rather than clamping.
func (s *Store) SetAlgorithmMix(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.AlgorithmMix = value
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	if err := s.kv.Set(storageKey, data); err != nil {
		return fmt.Errorf("persisting preferences: %w", err)
	}
	return nil
}
