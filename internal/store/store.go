// Package store defines the persistence surface of the entity-backend
// emulator. Entities are schemaless JSON documents kept in one
// document table per database; predicate and sort evaluation is shared
// across drivers and happens in process.
package store

import "context"

// Record is one entity document as stored and served.
type Record = map[string]any

// Store is implemented by each database driver
// (internal/store/sqlite, internal/store/postgres).
type Store interface {
	// Create persists the record under the given entity. The record
	// already carries its server-assigned id and created_date.
	Create(ctx context.Context, entity string, rec Record) error
	// Get returns the record or model.ErrNotFound.
	Get(ctx context.Context, entity, id string) (Record, error)
	// Update replaces the stored record; updating an absent id
	// returns model.ErrNotFound.
	Update(ctx context.Context, entity, id string, rec Record) error
	// Delete removes the record; deleting an absent id returns
	// model.ErrNotFound.
	Delete(ctx context.Context, entity, id string) error
	// All returns every record of the entity in unspecified order.
	All(ctx context.Context, entity string) ([]Record, error)
	// Ping verifies connectivity for health checks.
	Ping(ctx context.Context) error
	Close() error
}

// List fetches the entity's records sorted by sortKey ("-field" for
// descending), truncated to limit when limit > 0.
func List(ctx context.Context, s Store, entity, sortKey string, limit int) ([]Record, error) {
	recs, err := s.All(ctx, entity)
	if err != nil {
		return nil, err
	}
	SortByKey(recs, sortKey)
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// Filter fetches the entity's records matching where, sorted by
// sortKey when given.
func Filter(ctx context.Context, s Store, entity string, where Record, sortKey string) ([]Record, error) {
	recs, err := s.All(ctx, entity)
	if err != nil {
		return nil, err
	}
	out := recs[:0:0]
	for _, r := range recs {
		if Match(r, where) {
			out = append(out, r)
		}
	}
	if sortKey != "" {
		SortByKey(out, sortKey)
	}
	return out, nil
}
