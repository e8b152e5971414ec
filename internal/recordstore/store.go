// Package recordstore mirrors a remote document collection of local
// information records. The Store interface is the minimal capability set the
// core needs from any backend; the Adapter layers subscription semantics,
// seed fallback and error freezing on top of it.
package recordstore

import (
	"context"
	"errors"

	"github.com/amarupazila/app-local-info/internal/models"
)

// ErrNotFound is returned when a record id does not exist in the collection.
var ErrNotFound = errors.New("recordstore: record not found")

// Store is the record store collaborator: a document collection keyed by
// opaque string ids. Implementations perform exactly one remote attempt per
// call; retries are a caller concern.
type Store interface {
	// Snapshot fetches the full current contents of a collection (get-once).
	Snapshot(ctx context.Context, collection string) ([]models.Record, error)
	// Get retrieves one record by id.
	Get(ctx context.Context, collection, id string) (models.Record, error)
	// Add writes a new record and returns its id. A record without an id is
	// assigned one.
	Add(ctx context.Context, collection string, rec models.Record) (string, error)
	// Update applies a partial document update to an existing record.
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Delete removes a record by id.
	Delete(ctx context.Context, collection, id string) error
}
