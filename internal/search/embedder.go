// Package search provides keyword and hybrid search over the record
// collection, with optional Gemini embeddings.
package search

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const maxEmbeddingTextLength = 8000

// Embedder generates embeddings for record search content via Gemini.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates an embedder. Returns an error when the client cannot
// be initialized; callers treat a nil embedder as "keyword-only mode".
func NewEmbedder(ctx context.Context, apiKey, model string) (*Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("initializing gemini client: %w", err)
	}
	return &Embedder{client: client, model: model}, nil
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbeddingTextLength {
		text = text[:maxEmbeddingTextLength]
	}

	content := genai.NewContentFromText(text, genai.RoleUser)
	resp, err := e.client.Models.EmbedContent(ctx, e.model, []*genai.Content{content}, &genai.EmbedContentConfig{})
	if err != nil {
		return nil, fmt.Errorf("generating embedding: %w", err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return resp.Embeddings[0].Values, nil
}
