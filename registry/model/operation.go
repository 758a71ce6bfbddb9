package model

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/token"
)

// Operation represents one executed value-transfer leg. Operations are an
// append-only audit trail: a transfer produces a seller leg and, if the
// royalty amount is positive, a royalty leg; funding a balance produces a
// fund leg with no source.
type Operation struct {
	Token   string
	Created time.Time

	Source      *string // Source principal, nil for funding legs.
	Destination string  // Destination principal.
	Amount      Amount
	Asset       *string // Asset id, nil for funding legs.
	Kind        OpKind
	Position    int64   // Execution order; created can tie within a tick.
}

// CreateOperation creates and stores a new Operation object.
func CreateOperation(
	ctx context.Context,
	source *string,
	destination string,
	amount Amount,
	asset *string,
	kind OpKind,
) (*Operation, error) {
	operation := Operation{
		Token:   token.New("operation"),
		Created: time.Now().UTC(),

		Source:      source,
		Destination: destination,
		Amount:      amount,
		Asset:       asset,
		Kind:        kind,
	}

	ext := db.Ext(ctx, "registry")
	if err := sqlx.Get(ext, &operation.Position, `
SELECT COALESCE(MAX(position)+1, 0)
FROM operations
`); err != nil {
		return nil, errors.Trace(err)
	}

	if _, err := sqlx.NamedExec(ext, `
INSERT INTO operations
  (token, created, source, destination, amount, asset, kind, position)
VALUES
  (:token, :created, :source, :destination, :amount, :asset, :kind, :position)
`, operation); err != nil {
		return nil, errors.Trace(err)
	}

	return &operation, nil
}

// LoadOperationsByAsset returns the operations executed for the given asset,
// oldest first.
func LoadOperationsByAsset(
	ctx context.Context,
	asset string,
) ([]Operation, error) {
	ext := db.Ext(ctx, "registry")
	rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM operations
WHERE asset = :asset
ORDER BY position ASC
`, Operation{Asset: &asset})
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer rows.Close()

	operations := []Operation{}
	for rows.Next() {
		operation := Operation{}
		if err := rows.StructScan(&operation); err != nil {
			return nil, errors.Trace(err)
		}
		operations = append(operations, operation)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	return operations, nil
}
