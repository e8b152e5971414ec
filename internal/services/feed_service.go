// Package services orchestrates the record mirror, preferences and ranking
// into the responses the HTTP layer serves.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/preferences"
	"github.com/amarupazila/app-local-info/internal/ranking"
	"github.com/amarupazila/app-local-info/internal/recordstore"
	"github.com/amarupazila/app-local-info/internal/registry"
	"github.com/amarupazila/app-local-info/internal/utils"
)

const (
	defaultFeedPerPage = 20
	maxFeedPerPage     = 100
)

// FeedService keeps a live mirror of the record collection and serves the
// ranked feed from it. The ranked order is computed when a new snapshot
// arrives or when Refresh is called explicitly; plain reads page through the
// last computed order so the feed does not reshuffle under the user's thumb.
type FeedService struct {
	adapter    *recordstore.Adapter
	prefs      *preferences.Store
	engine     *ranking.Engine
	logger     zerolog.Logger
	collection string
	seed       []models.Record

	mu      sync.RWMutex
	sub     *recordstore.Subscription
	records []models.Record
	ranked  []models.Record
	loading bool
}

// NewFeedService wires the feed pipeline. seed is served whenever the remote
// collection is empty.
func NewFeedService(adapter *recordstore.Adapter, prefs *preferences.Store, engine *ranking.Engine, logger zerolog.Logger, collection string, seed []models.Record) *FeedService {
	return &FeedService{
		adapter:    adapter,
		prefs:      prefs,
		engine:     engine,
		logger:     logger,
		collection: collection,
		seed:       seed,
		records:    []models.Record{},
		ranked:     []models.Record{},
		loading:    true,
	}
}

// Start subscribes to the record collection and begins consuming
// notifications. It returns once the subscription is established; the first
// snapshot arrives asynchronously and flips the loading flag.
func (fs *FeedService) Start(ctx context.Context) error {
	sub, err := fs.adapter.Subscribe(ctx, fs.collection, fs.seed)
	if err != nil {
		return fmt.Errorf("starting feed subscription: %w", err)
	}

	fs.mu.Lock()
	fs.sub = sub
	fs.mu.Unlock()

	go fs.consume(sub)
	return nil
}

// Stop releases the subscription.
func (fs *FeedService) Stop() {
	fs.mu.RLock()
	sub := fs.sub
	fs.mu.RUnlock()
	if sub != nil {
		sub.Unsubscribe()
	}
}

func (fs *FeedService) consume(sub *recordstore.Subscription) {
	for state := range sub.Updates() {
		ranked := fs.engine.Rank(state.Records, fs.prefs.Get())

		fs.mu.Lock()
		fs.records = state.Records
		fs.ranked = ranked
		fs.loading = state.Loading
		fs.mu.Unlock()

		fs.logger.Debug().
			Int("records", len(state.Records)).
			Bool("loading", state.Loading).
			Msg("feed snapshot updated")
	}
}

// Feed pages through the last ranked order, optionally filtered by district
// and upazila. Filters compare case- and diacritic-insensitively.
func (fs *FeedService) Feed(req models.FeedRequest) models.FeedResponse {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > maxFeedPerPage {
		req.PerPage = defaultFeedPerPage
	}

	fs.mu.RLock()
	ranked := fs.ranked
	loading := fs.loading
	fs.mu.RUnlock()

	filtered := filterByLocation(ranked, req.District, req.Upazila)

	start := (req.Page - 1) * req.PerPage
	end := start + req.PerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]models.FeedItem, 0, end-start)
	for _, rec := range filtered[start:end] {
		items = append(items, toFeedItem(rec))
	}

	return models.FeedResponse{
		Items:   items,
		Found:   len(filtered),
		Page:    req.Page,
		PerPage: req.PerPage,
		Loading: loading,
	}
}

// Refresh recomputes the ranked order against the current preferences. This
// is the only path that reshuffles an already-served feed.
func (fs *FeedService) Refresh() {
	fs.mu.RLock()
	records := fs.records
	fs.mu.RUnlock()

	ranked := fs.engine.Rank(records, fs.prefs.Get())

	fs.mu.Lock()
	fs.ranked = ranked
	fs.mu.Unlock()
}

// Refetch forces a one-shot snapshot fetch on the underlying subscription,
// the recovery path after a frozen subscription.
func (fs *FeedService) Refetch(ctx context.Context) error {
	fs.mu.RLock()
	sub := fs.sub
	fs.mu.RUnlock()
	if sub == nil {
		return fmt.Errorf("feed subscription not started")
	}
	return sub.Refetch(ctx)
}

// Records returns the current unranked mirror. Used by the category service
// for live counts.
func (fs *FeedService) Records() []models.Record {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]models.Record, len(fs.records))
	copy(out, fs.records)
	return out
}

// Loading reports whether the first snapshot is still pending.
func (fs *FeedService) Loading() bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.loading
}

func filterByLocation(records []models.Record, district, upazila string) []models.Record {
	if district == "" && upazila == "" {
		return records
	}

	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		recDistrict, recUpazila := rec.Location()
		if district != "" && !utils.SameKey(recDistrict, district) {
			continue
		}
		if upazila != "" && !utils.SameKey(recUpazila, upazila) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func toFeedItem(rec models.Record) models.FeedItem {
	projection := registry.Project(rec)
	district, upazila := rec.Location()
	return models.FeedItem{
		ID:       rec.RecordID(),
		Category: rec.CategoryTag(),
		Title:    projection.Title,
		Subtitle: projection.Subtitle,
		District: district,
		Upazila:  upazila,
	}
}
