// Command seed upserts the bundled starter records into the record
// collection so a fresh deployment serves a populated feed immediately.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/amarupazila/app-local-info/internal/config"
	"github.com/amarupazila/app-local-info/internal/recordstore"
	"github.com/amarupazila/app-local-info/internal/registry"
	"github.com/amarupazila/app-local-info/internal/search"
	"github.com/amarupazila/app-local-info/internal/seed"
	"github.com/amarupazila/app-local-info/internal/typesense"
)

func main() {
	collection := flag.String("collection", "", "Target collection (default: configured LOCALINFO_COLLECTION)")
	district := flag.String("district", "", "District for the seed records (default: configured DEFAULT_DISTRICT)")
	upazila := flag.String("upazila", "", "Upazila for the seed records (default: configured DEFAULT_UPAZILA)")
	dryRun := flag.Bool("dry-run", false, "Print the records without writing")
	flag.Parse()

	cfg := config.LoadConfig()
	if *collection == "" {
		*collection = cfg.Collection
	}
	if *district == "" {
		*district = cfg.DefaultDistrict
	}
	if *upazila == "" {
		*upazila = cfg.DefaultUpazila
	}

	records := seed.Records(*district, *upazila)

	if *dryRun {
		for _, rec := range records {
			projection := registry.Project(rec)
			fmt.Printf("%-24s %-18s %s\n", rec.RecordID(), rec.CategoryTag(), projection.Title)
		}
		fmt.Printf("\n%d records (dry run, nothing written)\n", len(records))
		return
	}

	ctx := context.Background()

	var embedFn recordstore.EmbedFunc
	if cfg.GeminiAPIKey != "" {
		embedder, err := search.NewEmbedder(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbeddingModel)
		if err != nil {
			log.Printf("Embedder unavailable, seeding without vectors: %v", err)
		} else {
			embedFn = embedder.Embed
		}
	}

	store := recordstore.NewTypesenseStore(typesense.NewClient(cfg), embedFn)

	failures := 0
	for _, rec := range records {
		if err := store.Upsert(ctx, *collection, rec); err != nil {
			log.Printf("Failed to upsert %s: %v", rec.RecordID(), err)
			failures++
		}
	}

	fmt.Printf("Seeded %d/%d records into %s\n", len(records)-failures, len(records), *collection)
	if failures > 0 {
		os.Exit(1)
	}
}
