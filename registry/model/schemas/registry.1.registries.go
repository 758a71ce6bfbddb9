package schemas

import "github.com/JuinSoft/Celestium/lib/db"

const (
	registriesSQL = `
CREATE TABLE IF NOT EXISTS registries(
  token VARCHAR(256) NOT NULL, -- unique singleton token
  created TIMESTAMP NOT NULL,

  admin VARCHAR(256),          -- admin principal, NULL while uninitialized
  counter BIGINT NOT NULL,     -- number of minted assets

  PRIMARY KEY(token)
);
`
)

func init() {
	db.RegisterSchema(
		"registry",
		"registries",
		registriesSQL,
	)
}
