// Command migrate bootstraps the Typesense record collection.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"

	"github.com/amarupazila/app-local-info/internal/config"
)

var (
	collection = flag.String("collection", "", "Collection name (default: configured LOCALINFO_COLLECTION)")
	withVector = flag.Bool("with-vector", false, "Add the embedding field for hybrid search")
	jsonOutput = flag.Bool("json", false, "JSON output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  create    Create the record collection\n")
		fmt.Fprintf(os.Stderr, "  drop      Delete the record collection\n")
		fmt.Fprintf(os.Stderr, "  status    Show the collection schema and document count\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	command := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)
	flag.Parse()

	cfg := config.LoadConfig()
	name := *collection
	if name == "" {
		name = cfg.Collection
	}

	client := typesense.NewClient(
		typesense.WithServer(cfg.TypesenseURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
		typesense.WithConnectionTimeout(2*time.Minute),
	)

	ctx := context.Background()

	switch command {
	case "create":
		cmdCreate(ctx, client, name)
	case "drop":
		cmdDrop(ctx, client, name)
	case "status":
		cmdStatus(ctx, client, name)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

// recordSchema declares the fields shared by every record variant. The
// variant-specific payload fields ride on the auto catch-all so adding a
// category needs no schema change.
func recordSchema(name string) *api.CollectionSchema {
	fields := []api.Field{
		{Name: "category", Type: "string", Facet: pointer.True()},
		{Name: "district", Type: "string", Facet: pointer.True()},
		{Name: "upazila", Type: "string", Facet: pointer.True()},
		{Name: "search_content", Type: "string"},
		{Name: ".*", Type: "auto"},
	}
	if *withVector {
		fields = append(fields, api.Field{
			Name:     "embedding",
			Type:     "float[]",
			NumDim:   pointer.Int(768),
			Optional: pointer.True(),
		})
	}
	return &api.CollectionSchema{Name: name, Fields: fields}
}

func cmdCreate(ctx context.Context, client *typesense.Client, name string) {
	schema := recordSchema(name)

	result, err := client.Collections().Create(ctx, schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create collection %s: %v\n", name, err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(result)
		return
	}
	fmt.Printf("Collection %s created with %d declared fields\n", name, len(schema.Fields))
}

func cmdDrop(ctx context.Context, client *typesense.Client, name string) {
	if _, err := client.Collection(name).Delete(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to delete collection %s: %v\n", name, err)
		os.Exit(1)
	}
	fmt.Printf("Collection %s deleted\n", name)
}

func cmdStatus(ctx context.Context, client *typesense.Client, name string) {
	result, err := client.Collection(name).Retrieve(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to retrieve collection %s: %v\n", name, err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(result)
		return
	}

	fmt.Printf("Collection: %s\n", result.Name)
	if result.NumDocuments != nil {
		fmt.Printf("Documents:  %d\n", *result.NumDocuments)
	}
	fmt.Println("Fields:")
	for _, field := range result.Fields {
		facet := ""
		if field.Facet != nil && *field.Facet {
			facet = " (facet)"
		}
		fmt.Printf("  %-16s %s%s\n", field.Name, field.Type, facet)
	}
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize JSON: %v", err)
	}
	fmt.Println(string(data))
}
