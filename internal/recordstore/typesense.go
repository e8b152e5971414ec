package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"

	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/registry"
	"github.com/amarupazila/app-local-info/internal/utils"
)

const snapshotPageSize = 250

// EmbedFunc produces an embedding for a record's search content. Optional;
// when unset, documents are indexed without vectors and search stays
// keyword-only.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// TypesenseStore implements Store against a Typesense cluster.
type TypesenseStore struct {
	client *typesense.Client
	embed  EmbedFunc
}

// NewTypesenseStore wraps a Typesense client. embed may be nil.
func NewTypesenseStore(client *typesense.Client, embed EmbedFunc) *TypesenseStore {
	return &TypesenseStore{client: client, embed: embed}
}

// Client exposes the underlying client for health checks and search.
func (t *TypesenseStore) Client() *typesense.Client {
	return t.client
}

// Snapshot pages through the collection with a wildcard search. Documents
// that fail to decode are skipped; uniqueness of ids is trusted, not
// enforced.
func (t *TypesenseStore) Snapshot(ctx context.Context, collection string) ([]models.Record, error) {
	var records []models.Record

	for page := 1; ; page++ {
		searchParams := &api.SearchCollectionParams{
			Q:       pointer.String("*"),
			Page:    pointer.Int(page),
			PerPage: pointer.Int(snapshotPageSize),
		}

		result, err := t.client.Collection(collection).Documents().Search(ctx, searchParams)
		if err != nil {
			return nil, fmt.Errorf("fetching snapshot page %d of %s: %w", page, collection, err)
		}
		if result.Hits == nil || len(*result.Hits) == 0 {
			break
		}

		for _, hit := range *result.Hits {
			if hit.Document == nil {
				continue
			}
			rec, err := decodeDocument(*hit.Document)
			if err != nil {
				continue
			}
			records = append(records, rec)
		}

		if len(*result.Hits) < snapshotPageSize {
			break
		}
	}

	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// Get retrieves one record by id.
func (t *TypesenseStore) Get(ctx context.Context, collection, id string) (models.Record, error) {
	doc, err := t.client.Collection(collection).Document(id).Retrieve(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("retrieving record %s: %w", id, err)
	}
	return decodeDocument(doc)
}

// Add indexes a new record. The document is enriched with search content
// and, when an embedder is configured, a vector.
func (t *TypesenseStore) Add(ctx context.Context, collection string, rec models.Record) (string, error) {
	doc, err := t.buildDocument(ctx, rec)
	if err != nil {
		return "", err
	}

	id, _ := doc["id"].(string)
	if id == "" {
		id = utils.NewRecordID(registry.Project(rec).Title)
		doc["id"] = id
	}

	if _, err := t.client.Collection(collection).Documents().Create(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return "", fmt.Errorf("creating record: %w", err)
	}
	return id, nil
}

// Upsert indexes a record, overwriting any existing document with the same
// id. Used by the seed loader.
func (t *TypesenseStore) Upsert(ctx context.Context, collection string, rec models.Record) error {
	doc, err := t.buildDocument(ctx, rec)
	if err != nil {
		return err
	}
	if _, err := t.client.Collection(collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("upserting record %v: %w", doc["id"], err)
	}
	return nil
}

// Update applies a partial update. The category tag is immutable and
// silently dropped from the patch.
func (t *TypesenseStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	patch := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == "id" || k == "category" {
			continue
		}
		patch[k] = v
	}

	if _, err := t.client.Collection(collection).Document(id).Update(ctx, patch, &api.DocumentIndexParameters{}); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("updating record %s: %w", id, err)
	}
	return nil
}

// Delete removes one record.
func (t *TypesenseStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := t.client.Collection(collection).Document(id).Delete(ctx); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	return nil
}

func (t *TypesenseStore) buildDocument(ctx context.Context, rec models.Record) (map[string]interface{}, error) {
	data, err := models.EncodeRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("flattening record: %w", err)
	}

	content := registry.SearchContent(rec)
	doc["search_content"] = content

	if t.embed != nil {
		embedding, err := t.embed(ctx, content)
		if err == nil && len(embedding) > 0 {
			doc["embedding"] = embedding
		}
		// Embedding failures degrade to keyword-only indexing.
	}
	return doc, nil
}

func decodeDocument(doc map[string]interface{}) (models.Record, error) {
	delete(doc, "search_content")
	delete(doc, "embedding")

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encoding document: %w", err)
	}
	return models.DecodeRecord(data)
}

func isNotFound(err error) bool {
	var httpErr *typesense.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status == 404
	}
	return strings.Contains(err.Error(), "404") || strings.Contains(err.Error(), "not found")
}
