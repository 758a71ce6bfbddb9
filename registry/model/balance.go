package model

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/token"
)

// Balance represents the value held by a principal on the registry's payment
// rail. Balances are updated as transfer legs are executed.
type Balance struct {
	Token   string
	Created time.Time

	Holder string // Holder principal.
	Value  Amount
}

// CreateBalance creates and stores a new Balance object. Only one balance
// can exist per holder; existing balances should be retrieved and updated
// instead.
func CreateBalance(
	ctx context.Context,
	holder string,
	value Amount,
) (*Balance, error) {
	balance := Balance{
		Token:   token.New("balance"),
		Created: time.Now().UTC(),

		Holder: holder,
		Value:  value,
	}

	ext := db.Ext(ctx, "registry")
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO balances
  (token, created, holder, value)
VALUES
  (:token, :created, :holder, :value)
`, balance); err != nil {
		switch err := err.(type) {
		case *pq.Error:
			if err.Code.Name() == "unique_violation" {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		case sqlite3.Error:
			if err.ExtendedCode == sqlite3.ErrConstraintUnique {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		}
		return nil, errors.Trace(err)
	}

	return &balance, nil
}

// Save updates the object database representation with the in-memory values.
func (b *Balance) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx, "registry")
	_, err := sqlx.NamedExec(ext, `
UPDATE balances
SET value = :value
WHERE token = :token
`, b)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadBalanceByHolder attempts to load the balance of the given holder.
func LoadBalanceByHolder(
	ctx context.Context,
	holder string,
) (*Balance, error) {
	balance := Balance{
		Holder: holder,
	}

	ext := db.Ext(ctx, "registry")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM balances
WHERE holder = :holder
`, balance); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		if err := rows.Close(); err != nil {
			return nil, errors.Trace(err)
		}
		return nil, nil
	} else if err := rows.StructScan(&balance); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &balance, nil
}

// LoadOrCreateBalanceByHolder loads the balance of the specified holder or
// creates one (with a 0 value) if it does not exist.
func LoadOrCreateBalanceByHolder(
	ctx context.Context,
	holder string,
) (*Balance, error) {
	balance, err := LoadBalanceByHolder(ctx, holder)
	if err != nil {
		return nil, errors.Trace(err)
	} else if balance == nil {
		balance, err = CreateBalance(ctx, holder, Amount{})
		if err != nil {
			return nil, errors.Trace(err)
		}
	}
	return balance, nil
}
