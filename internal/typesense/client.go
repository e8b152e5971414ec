// Package typesense builds the Typesense client from application config.
package typesense

import (
	"time"

	"github.com/typesense/typesense-go/v3/typesense"

	"github.com/amarupazila/app-local-info/internal/config"
)

// NewClient creates a Typesense client pointed at the configured cluster.
func NewClient(cfg *config.Config) *typesense.Client {
	return typesense.NewClient(
		typesense.WithServer(cfg.TypesenseURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)
}
