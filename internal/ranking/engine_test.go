package ranking

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
)

// zeroEntropy removes the random term entirely.
type zeroEntropy struct{}

func (zeroEntropy) Float64() float64 { return 0 }

func prefsWith(mix int, entries ...models.PreferenceEntry) models.PreferenceSet {
	set := models.PreferenceSet{
		Entries:      make(map[constants.Category]models.PreferenceEntry),
		AlgorithmMix: mix,
	}
	for _, entry := range entries {
		set.Entries[entry.Category] = entry
	}
	return set
}

func record(id string, category constants.Category) models.Record {
	return &models.AnnouncementRecord{
		RecordBase: models.RecordBase{ID: id, Category: category, District: "Netrokona", Upazila: "Kendua"},
		Title:      id,
	}
}

func ids(records []models.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.RecordID()
	}
	return out
}

func TestRankEmptyInput(t *testing.T) {
	engine := NewEngine(nil)
	for _, mix := range []int{0, 50, 100} {
		got := engine.Rank(nil, prefsWith(mix))
		if len(got) != 0 {
			t.Errorf("Rank(nil) with mix=%d returned %d records", mix, len(got))
		}
	}
}

func TestRankFullMixIsDeterministicPrioritySort(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(1)))
	prefs := prefsWith(100,
		models.PreferenceEntry{Category: constants.CategoryHealth, Enabled: true, Priority: 90},
		models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: true, Priority: 40},
		models.PreferenceEntry{Category: constants.CategoryWeather, Enabled: true, Priority: 70},
	)
	records := []models.Record{
		record("jobs-1", constants.CategoryJobs),
		record("weather-1", constants.CategoryWeather),
		record("health-1", constants.CategoryHealth),
		record("jobs-2", constants.CategoryJobs),
	}

	want := []string{"health-1", "weather-1", "jobs-1", "jobs-2"}
	for trial := 0; trial < 10; trial++ {
		got := ids(engine.Rank(records, prefs))
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("trial %d: order = %v, want %v", trial, got, want)
			}
		}
	}
}

func TestRankStableTieBreak(t *testing.T) {
	// All records share one category, so at mix=100 every score ties and the
	// input order must survive.
	engine := NewEngine(rand.New(rand.NewSource(7)))
	prefs := prefsWith(100,
		models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: true, Priority: 60},
	)

	var records []models.Record
	for i := 0; i < 8; i++ {
		records = append(records, record(fmt.Sprintf("jobs-%d", i), constants.CategoryJobs))
	}

	got := ids(engine.Rank(records, prefs))
	for i, rec := range records {
		if got[i] != rec.RecordID() {
			t.Fatalf("tie order changed: %v", got)
		}
	}
}

func TestRankDisabledCategorySinksToZero(t *testing.T) {
	engine := NewEngine(zeroEntropy{})
	prefs := prefsWith(100,
		models.PreferenceEntry{Category: constants.CategoryHealth, Enabled: false, Priority: 95},
		models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: true, Priority: 10},
	)
	records := []models.Record{
		record("health-1", constants.CategoryHealth),
		record("jobs-1", constants.CategoryJobs),
		record("health-2", constants.CategoryHealth),
	}

	got := ids(engine.Rank(records, prefs))
	if got[0] != "jobs-1" {
		t.Fatalf("enabled category did not outrank disabled ones: %v", got)
	}
	// Disabled records tie at zero and keep input order.
	if got[1] != "health-1" || got[2] != "health-2" {
		t.Errorf("disabled records lost input order: %v", got)
	}
}

func TestRankZeroMixIgnoresPriorities(t *testing.T) {
	// At mix=0 ordering frequency should be roughly uniform regardless of
	// priorities. Checked statistically: the low-priority record should land
	// first in roughly a third of trials.
	engine := NewEngine(rand.New(rand.NewSource(42)))
	prefs := prefsWith(0,
		models.PreferenceEntry{Category: constants.CategoryHealth, Enabled: true, Priority: 100},
		models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: true, Priority: 1},
	)
	records := []models.Record{
		record("health-1", constants.CategoryHealth),
		record("health-2", constants.CategoryHealth),
		record("jobs-1", constants.CategoryJobs),
	}

	const trials = 3000
	firsts := make(map[string]int)
	for i := 0; i < trials; i++ {
		firsts[engine.Rank(records, prefs)[0].RecordID()]++
	}

	for _, id := range []string{"health-1", "health-2", "jobs-1"} {
		share := float64(firsts[id]) / trials
		if share < 0.25 || share > 0.42 {
			t.Errorf("record %s ranked first with share %.3f, expected roughly 1/3 (%v)", id, share, firsts)
		}
	}
}

func TestRankSharedEngineAcrossGoroutines(t *testing.T) {
	// A single engine is shared between the snapshot consumer and
	// request-driven refreshes, so the default entropy source must tolerate
	// concurrent draws. Run with -race.
	engine := NewEngine(nil)
	prefs := prefsWith(30,
		models.PreferenceEntry{Category: constants.CategoryHealth, Enabled: true, Priority: 80},
		models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: true, Priority: 20},
	)
	records := []models.Record{
		record("health-1", constants.CategoryHealth),
		record("jobs-1", constants.CategoryJobs),
		record("jobs-2", constants.CategoryJobs),
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := engine.Rank(records, prefs); len(got) != len(records) {
					t.Errorf("Rank returned %d records, want %d", len(got), len(records))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRankDoesNotMutateInput(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(3)))
	prefs := prefsWith(0,
		models.PreferenceEntry{Category: constants.CategoryJobs, Enabled: true, Priority: 50},
	)
	records := []models.Record{
		record("jobs-1", constants.CategoryJobs),
		record("jobs-2", constants.CategoryJobs),
		record("jobs-3", constants.CategoryJobs),
	}

	for i := 0; i < 20; i++ {
		engine.Rank(records, prefs)
	}
	want := []string{"jobs-1", "jobs-2", "jobs-3"}
	for i, rec := range records {
		if rec.RecordID() != want[i] {
			t.Fatalf("input slice was reordered: %v", ids(records))
		}
	}
}
