package model

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
)

// RegistryToken is the token of the unique registry row.
const RegistryToken = "registry"

// Registry represents the registry singleton: the one-time admin principal
// and the monotonically increasing count of minted assets. The row is created
// lazily with a NULL admin and a 0 counter, so that minting does not require
// a prior initialization.
type Registry struct {
	Token   string
	Created time.Time

	Admin   *string // Admin principal, nil while uninitialized.
	Counter int64   // Number of minted assets.
}

// LoadOrCreateRegistry loads the registry singleton, creating it
// (uninitialized, counter at 0) if it does not exist yet.
func LoadOrCreateRegistry(
	ctx context.Context,
) (*Registry, error) {
	registry := Registry{
		Token: RegistryToken,
	}

	ext := db.Ext(ctx, "registry")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM registries
WHERE token = :token
`, registry); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		if err := rows.Close(); err != nil {
			return nil, errors.Trace(err)
		}
		registry.Created = time.Now().UTC()
		registry.Admin = nil
		registry.Counter = 0
		if _, err := sqlx.NamedExec(ext, `
INSERT INTO registries
  (token, created, admin, counter)
VALUES
  (:token, :created, :admin, :counter)
`, registry); err != nil {
			return nil, errors.Trace(err)
		}
		return &registry, nil
	} else if err := rows.StructScan(&registry); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &registry, nil
}

// Save updates the object database representation with the in-memory values.
func (r *Registry) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx, "registry")
	_, err := sqlx.NamedExec(ext, `
UPDATE registries
SET admin = :admin, counter = :counter
WHERE token = :token
`, r)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}
