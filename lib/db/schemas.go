package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/logging"
)

var schemas = map[string]map[string]string{}

// RegisterSchema lets schemas register themselves.
func RegisterSchema(
	tag string,
	table string,
	schema string,
) {
	if _, ok := schemas[tag]; !ok {
		schemas[tag] = map[string]string{}
	}
	schemas[tag][table] = schema
}

// CreateDBTables creates the DB tables registered under tag if they don't
// exist.
func CreateDBTables(
	ctx context.Context,
	tag string,
	db *sqlx.DB,
) error {
	for name, sch := range schemas[tag] {
		logging.Logf(ctx, "Executing schema: tag=%s name=%s", tag, name)
		_, err := db.Exec(sch)
		if err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
