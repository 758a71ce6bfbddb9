package schemas

import "github.com/JuinSoft/Celestium/lib/db"

const (
	assetOwnersSQL = `
CREATE TABLE IF NOT EXISTS asset_owners(
  token VARCHAR(256) NOT NULL,  -- token
  created TIMESTAMP NOT NULL,

  owner VARCHAR(256) NOT NULL,  -- owner principal
  asset VARCHAR(256) NOT NULL,  -- asset id
  position BIGINT NOT NULL,     -- insertion order within the owner's list

  PRIMARY KEY(token),
  CONSTRAINT asset_owners_asset_u UNIQUE (asset)
);
`
)

func init() {
	db.RegisterSchema(
		"registry",
		"asset_owners",
		assetOwnersSQL,
	)
}
