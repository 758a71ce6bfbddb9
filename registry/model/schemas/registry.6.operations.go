package schemas

import "github.com/JuinSoft/Celestium/lib/db"

const (
	operationsSQL = `
CREATE TABLE IF NOT EXISTS operations(
  token VARCHAR(256) NOT NULL,       -- token
  created TIMESTAMP NOT NULL,

  source VARCHAR(256),               -- source principal, NULL for funding
  destination VARCHAR(256) NOT NULL, -- destination principal
  amount VARCHAR(64) NOT NULL,       -- transferred value
  asset VARCHAR(256),                -- asset id, NULL for funding
  kind VARCHAR(32) NOT NULL,         -- leg kind (seller, royalty, fund)
  position INT NOT NULL,             -- execution order across all legs

  PRIMARY KEY(token)
);
`
)

func init() {
	db.RegisterSchema(
		"registry",
		"operations",
		operationsSQL,
	)
}
