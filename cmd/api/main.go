package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"

	_ "github.com/amarupazila/app-local-info/docs"
	"github.com/amarupazila/app-local-info/internal/api/routes"
	"github.com/amarupazila/app-local-info/internal/config"
	"github.com/amarupazila/app-local-info/internal/errreport"
	"github.com/amarupazila/app-local-info/internal/observability"
	"github.com/amarupazila/app-local-info/internal/preferences"
	"github.com/amarupazila/app-local-info/internal/ranking"
	"github.com/amarupazila/app-local-info/internal/recordstore"
	"github.com/amarupazila/app-local-info/internal/search"
	"github.com/amarupazila/app-local-info/internal/seed"
	"github.com/amarupazila/app-local-info/internal/services"
	"github.com/amarupazila/app-local-info/internal/typesense"
)

// @title           Local Info API
// @version         1.0
// @description     Community information portal API serving a ranked, preference-weighted feed of district and upazila scoped records, with full-text and hybrid search over Typesense

// @contact.name   Amar Upazila
// @contact.url    https://github.com/amarupazila

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := context.Background()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	kv, err := preferences.OpenBadger(cfg.PreferencesDBPath)
	if err != nil {
		log.Fatalf("Failed to open preference database: %v", err)
	}
	defer kv.Close()
	prefs := preferences.NewStore(kv, logger)

	tsClient := typesense.NewClient(cfg)

	var embedFn recordstore.EmbedFunc
	var embedder *search.Embedder
	if cfg.GeminiAPIKey != "" {
		embedder, err = search.NewEmbedder(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbeddingModel)
		if err != nil {
			logger.Warn().Err(err).Msg("embedder unavailable, running keyword-only")
			embedder = nil
		} else {
			embedFn = embedder.Embed
		}
	}

	store := recordstore.NewTypesenseStore(tsClient, embedFn)
	adapter := recordstore.NewAdapter(store, errreport.NewZerologReporter(logger), logger,
		recordstore.WithPollInterval(cfg.PollInterval))
	defer adapter.Close()

	feedService := services.NewFeedService(adapter, prefs, ranking.NewEngine(nil), logger,
		cfg.Collection, seed.Records(cfg.DefaultDistrict, cfg.DefaultUpazila))
	if err := feedService.Start(ctx); err != nil {
		log.Fatalf("Failed to start feed service: %v", err)
	}
	defer feedService.Stop()

	r := routes.SetupRouter(cfg, routes.Deps{
		TypesenseClient: tsClient,
		Adapter:         adapter,
		FeedService:     feedService,
		CategoryService: services.NewCategoryService(feedService, prefs),
		SearchService:   search.NewService(tsClient, embedder),
		Preferences:     prefs,
	})

	log.Printf("Server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
