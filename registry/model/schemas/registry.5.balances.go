package schemas

import "github.com/JuinSoft/Celestium/lib/db"

const (
	balancesSQL = `
CREATE TABLE IF NOT EXISTS balances(
  token VARCHAR(256) NOT NULL,  -- token
  created TIMESTAMP NOT NULL,

  holder VARCHAR(256) NOT NULL, -- holder principal
  value VARCHAR(64) NOT NULL,   -- balance value

  PRIMARY KEY(token),
  CONSTRAINT balances_holder_u UNIQUE (holder)
);
`
)

func init() {
	db.RegisterSchema(
		"registry",
		"balances",
		balancesSQL,
	)
}
