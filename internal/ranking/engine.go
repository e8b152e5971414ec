// Package ranking orders the record feed by blending explicit per-category
// preference weights with a controllable randomness factor.
package ranking

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/amarupazila/app-local-info/internal/models"
)

// Entropy is the injectable randomness source. Float64 must return a value
// in [0, 1). Injecting a fixed source makes ranking reproducible under test.
type Entropy interface {
	Float64() float64
}

// Engine ranks records against a preference set.
type Engine struct {
	entropy Entropy
}

// NewEngine creates a ranking engine. A nil entropy source falls back to a
// time-seeded generator. One engine may be shared across goroutines (snapshot
// consumer and request-driven refreshes), so the default source is locked;
// injected sources must bring their own safety if shared.
func NewEngine(entropy Entropy) *Engine {
	if entropy == nil {
		entropy = &lockedEntropy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	return &Engine{entropy: entropy}
}

// lockedEntropy serializes draws from a non-concurrency-safe rand source.
type lockedEntropy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedEntropy) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// Rank returns the records in display order without mutating the input.
//
// Per-record score:
//
//	score = basePriority*(mix/100) + random(0,100)*((100-mix)/100)
//
// where basePriority is the enabled preference's priority for the record's
// category (0 when disabled or absent) and mix is the algorithm mix. The sort
// is stable: equal scores keep their input order. mix=100 is a deterministic
// preference-only ordering; mix=0 is a pure shuffle.
//
// The random term is re-drawn per record on every call, so repeated calls
// generally produce different orders unless mix is 100. That is deliberate;
// it keeps the feed fresh. Callers wanting a sticky order cache the result
// and re-rank on an explicit refresh.
func (e *Engine) Rank(records []models.Record, prefs models.PreferenceSet) []models.Record {
	if len(records) == 0 {
		return []models.Record{}
	}

	mix := float64(prefs.AlgorithmMix)
	type scored struct {
		rec   models.Record
		score float64
	}

	ranked := make([]scored, len(records))
	for i, rec := range records {
		base := float64(prefs.BasePriority(rec.CategoryTag()))
		random := e.entropy.Float64() * 100
		ranked[i] = scored{
			rec:   rec,
			score: base*(mix/100) + random*((100-mix)/100),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]models.Record, len(ranked))
	for i, s := range ranked {
		out[i] = s.rec
	}
	return out
}
