package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"

	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/registry"
)

const hybridAlpha = 0.3

// Result is one page of search hits, already projected for display.
type Result struct {
	Items   []models.FeedItem `json:"items"`
	Found   int               `json:"found"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

// Service searches the record collection. With an embedder configured the
// query runs hybrid (keyword + vector); otherwise keyword-only.
type Service struct {
	client   *typesense.Client
	embedder *Embedder
}

// NewService builds a search service. embedder may be nil.
func NewService(client *typesense.Client, embedder *Embedder) *Service {
	return &Service{client: client, embedder: embedder}
}

// Search runs a query against the collection, optionally filtered by
// district and upazila.
func (s *Service) Search(ctx context.Context, collection, query, district, upazila string, page, perPage int) (*Result, error) {
	searchParams := &api.SearchCollectionParams{
		Q:                    pointer.String(query),
		QueryBy:              pointer.String("search_content"),
		Page:                 pointer.Int(page),
		PerPage:              pointer.Int(perPage),
		PrioritizeExactMatch: pointer.True(),
		NumTypos:             pointer.String("2"),
	}

	if filterBy := buildFilterBy(district, upazila); filterBy != "" {
		searchParams.FilterBy = pointer.String(filterBy)
	}

	if s.embedder != nil {
		embedding, err := s.embedder.Embed(ctx, query)
		if err == nil && len(embedding) > 0 {
			searchParams.VectorQuery = pointer.String(formatVectorQuery(embedding))
		}
		// Embedding failure degrades to keyword search, not an error.
	}

	result, err := s.client.Collection(collection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", collection, err)
	}

	out := &Result{Items: []models.FeedItem{}, Page: page, PerPage: perPage}
	if result.Found != nil {
		out.Found = int(*result.Found)
	}
	if result.Hits == nil {
		return out, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		item, err := toFeedItem(*hit.Document)
		if err != nil {
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func toFeedItem(doc map[string]interface{}) (models.FeedItem, error) {
	delete(doc, "search_content")
	delete(doc, "embedding")

	data, err := json.Marshal(doc)
	if err != nil {
		return models.FeedItem{}, err
	}
	rec, err := models.DecodeRecord(data)
	if err != nil {
		return models.FeedItem{}, err
	}

	projection := registry.Project(rec)
	district, upazila := rec.Location()
	return models.FeedItem{
		ID:       rec.RecordID(),
		Category: rec.CategoryTag(),
		Title:    projection.Title,
		Subtitle: projection.Subtitle,
		District: district,
		Upazila:  upazila,
	}, nil
}

func buildFilterBy(district, upazila string) string {
	var filters []string
	if district != "" {
		filters = append(filters, fmt.Sprintf("district:=%s", district))
	}
	if upazila != "" {
		filters = append(filters, fmt.Sprintf("upazila:=%s", upazila))
	}
	return strings.Join(filters, " && ")
}

func formatVectorQuery(embedding []float32) string {
	values := make([]string, len(embedding))
	for i, v := range embedding {
		values[i] = fmt.Sprintf("%.6f", v)
	}
	return fmt.Sprintf("embedding:([%s], alpha:%.2f)", strings.Join(values, ","), hybridAlpha)
}
