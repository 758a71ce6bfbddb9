package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// ContextKey is the type of the keys under which the contextual db map and
// transaction map are stored.
type ContextKey string

const (
	// mapKey the context.Context key to store the db map.
	mapKey ContextKey = "db.map"
)

// WithDB returns a context with db registered under tag, preserving any db
// already stored. The registry service stores its db under the "registry"
// tag at boot.
func WithDB(
	ctx context.Context,
	tag string,
	db *sqlx.DB,
) context.Context {
	m := map[string]*sqlx.DB{}
	if ctx.Value(mapKey) != nil {
		for t, d := range ctx.Value(mapKey).(map[string]*sqlx.DB) {
			m[t] = d
		}
	}
	m[tag] = db
	return context.WithValue(ctx, mapKey, m)
}

// GetDB returns the db stored in the context under tag, or nil if none was
// registered.
func GetDB(
	ctx context.Context,
	tag string,
) *sqlx.DB {
	m := ctx.Value(mapKey).(map[string]*sqlx.DB)
	if db, ok := m[tag]; ok {
		return db
	}
	return nil
}

// GetDBMap returns the db map currently stored in the context. Used by the
// middleware to re-inject the dbs opened at boot into each request context.
func GetDBMap(
	ctx context.Context,
) map[string]*sqlx.DB {
	return ctx.Value(mapKey).(map[string]*sqlx.DB)
}

// WithDBMap stores the db map in the provided context.
func WithDBMap(
	ctx context.Context,
	m map[string]*sqlx.DB,
) context.Context {
	return context.WithValue(ctx, mapKey, m)
}
