package preferences

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
)

// mapKV is an in-memory durable KV stand-in. Contents survive across Store
// instances, which is what the restart tests rely on.
type mapKV struct {
	data map[string][]byte
	sets int
}

func newMapKV() *mapKV {
	return &mapKV{data: make(map[string][]byte)}
}

func (m *mapKV) Get(key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (m *mapKV) Set(key string, value []byte) error {
	m.sets++
	m.data[key] = value
	return nil
}

func TestNewStoreSeedsDefaults(t *testing.T) {
	store := NewStore(newMapKV(), zerolog.Nop())
	prefs := store.Get()

	if len(prefs.Entries) != len(constants.KnownCategories) {
		t.Fatalf("default entries = %d, want %d", len(prefs.Entries), len(constants.KnownCategories))
	}
	for _, category := range constants.KnownCategories {
		entry, ok := prefs.Entries[category]
		if !ok {
			t.Errorf("no default entry for %s", category)
			continue
		}
		if !entry.Enabled || entry.Priority != models.DefaultPriority {
			t.Errorf("default for %s = %+v", category, entry)
		}
	}
}

func TestSetPreferenceOverwritesOneEntry(t *testing.T) {
	store := NewStore(newMapKV(), zerolog.Nop())

	if err := store.SetPreference(constants.CategoryJobs, true, 95); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}

	prefs := store.Get()
	jobs := prefs.Entries[constants.CategoryJobs]
	want := models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: true, Priority: 95}
	if jobs != want {
		t.Errorf("jobs entry = %+v, want %+v", jobs, want)
	}

	// Everything else is untouched.
	for _, category := range constants.KnownCategories {
		if category == constants.CategoryJobs {
			continue
		}
		entry := prefs.Entries[category]
		if !entry.Enabled || entry.Priority != models.DefaultPriority {
			t.Errorf("entry for %s changed: %+v", category, entry)
		}
	}
}

func TestEveryMutationPersists(t *testing.T) {
	kv := newMapKV()
	store := NewStore(kv, zerolog.Nop())

	_ = store.SetPreference(constants.CategoryHealth, false, 0)
	_ = store.SetAlgorithmMix(70)

	if kv.sets != 2 {
		t.Errorf("persisted %d times, want 2", kv.sets)
	}
}

func TestRestartRoundTrip(t *testing.T) {
	kv := newMapKV()

	first := NewStore(kv, zerolog.Nop())
	if err := first.SetAlgorithmMix(42); err != nil {
		t.Fatalf("SetAlgorithmMix: %v", err)
	}
	if err := first.SetPreference(constants.CategoryJobs, true, 95); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}

	// Simulated restart: a fresh store over the same KV.
	second := NewStore(kv, zerolog.Nop())
	prefs := second.Get()
	if prefs.AlgorithmMix != 42 {
		t.Errorf("AlgorithmMix after reload = %d, want 42", prefs.AlgorithmMix)
	}
	if jobs := prefs.Entries[constants.CategoryJobs]; jobs.Priority != 95 {
		t.Errorf("jobs priority after reload = %d, want 95", jobs.Priority)
	}
}

func TestCorruptStorageFallsBackToDefaults(t *testing.T) {
	kv := newMapKV()
	kv.data[storageKey] = []byte("{definitely not json")

	store := NewStore(kv, zerolog.Nop())
	prefs := store.Get()
	if len(prefs.Entries) != len(constants.KnownCategories) {
		t.Errorf("corrupt storage did not fall back to defaults: %d entries", len(prefs.Entries))
	}
}

type failingKV struct{ mapKV }

func (f *failingKV) Set(string, []byte) error { return errors.New("disk full") }

func TestPersistFailureSurfacesToCaller(t *testing.T) {
	kv := &failingKV{mapKV{data: make(map[string][]byte)}}
	store := NewStore(kv, zerolog.Nop())

	if err := store.SetAlgorithmMix(10); err == nil {
		t.Error("SetAlgorithmMix swallowed persistence failure")
	}
}

func TestGetReturnsACopy(t *testing.T) {
	store := NewStore(newMapKV(), zerolog.Nop())

	prefs := store.Get()
	prefs.Entries[constants.CategoryJobs] = models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: false, Priority: 1}

	if entry := store.Get().Entries[constants.CategoryJobs]; !entry.Enabled {
		t.Error("mutating a Get snapshot leaked into the store")
	}
}
