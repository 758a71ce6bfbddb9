package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/JuinSoft/Celestium/lib/logging"
	"github.com/JuinSoft/Celestium/lib/token"
)

const (
	// transactionKey the context.Context key to store the current transaction
	// map.
	transactionKey ContextKey = "db.transaction"
)

// Transaction stores a database transaction along with a token used to
// identify it in logs.
type Transaction struct {
	Tx    *sqlx.Tx
	Token string
}

// WithTransaction stores the transaction in the provided context under tag.
func WithTransaction(
	ctx context.Context,
	tag string,
	transaction Transaction,
) context.Context {
	m := map[string]Transaction{}
	if ctx.Value(transactionKey) != nil {
		for t, tx := range ctx.Value(transactionKey).(map[string]Transaction) {
			m[t] = tx
		}
	}
	m[tag] = transaction
	return context.WithValue(ctx, transactionKey, m)
}

// GetTransaction retrieves the current transaction under tag from the
// context.
func GetTransaction(
	ctx context.Context,
	tag string,
) Transaction {
	return ctx.Value(transactionKey).(map[string]Transaction)[tag]
}

// Begin returns a new context with a new transaction set for the db stored
// under tag. Its use with LoggedRollback and Commit delimits the atomic
// invocation all state mutations execute within:
// ```
//	ctx = db.Begin(ctx, "registry")
//	defer db.LoggedRollback(ctx, "registry")
//	...
//	db.Commit(ctx, "registry")
// ```
func Begin(
	ctx context.Context,
	tag string,
) context.Context {
	if ctx.Value(mapKey) == nil || GetDB(ctx, tag) == nil {
		panic("db: no DB in context for tag: " + tag)
	}
	token := token.New("tx")
	logging.Logf(ctx,
		"Transaction: begin %s.", token)
	return WithTransaction(ctx, tag, Transaction{
		Tx:    GetDB(ctx, tag).MustBegin(),
		Token: token,
	})
}

// Commit commits the transaction in the current context under tag.
func Commit(
	ctx context.Context,
	tag string,
) {
	logging.Logf(ctx,
		"Transaction: commit %s.", GetTransaction(ctx, tag).Token)
	err := GetTransaction(ctx, tag).Tx.Commit()
	if err != nil {
		panic(err)
	}
}

// LoggedRollback logs and performs a rollback if a commit or another rollback
// didn't take place before this call. Used in general with defer right after
// calling `Begin`.
func LoggedRollback(
	ctx context.Context,
	tag string,
) {
	err := GetTransaction(ctx, tag).Tx.Rollback()
	if err != sql.ErrTxDone && err != nil {
		panic(err)
	} else if err == nil {
		logging.Logf(ctx,
			"Transaction: rollback %s.", GetTransaction(ctx, tag).Token)
	}
}

// Ext returns the current Ext under tag (a transaction if one has begun, or
// the DB otherwise).
func Ext(
	ctx context.Context,
	tag string,
) sqlx.Ext {
	if ctx.Value(transactionKey) != nil &&
		GetTransaction(ctx, tag).Tx != nil {
		return GetTransaction(ctx, tag).Tx
	}
	return GetDB(ctx, tag)
}
