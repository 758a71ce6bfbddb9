package schemas

import "github.com/JuinSoft/Celestium/lib/db"

const (
	assetCreatorsSQL = `
CREATE TABLE IF NOT EXISTS asset_creators(
  token VARCHAR(256) NOT NULL,   -- token
  created TIMESTAMP NOT NULL,

  creator VARCHAR(256) NOT NULL, -- creator principal
  asset VARCHAR(256) NOT NULL,   -- asset id
  position BIGINT NOT NULL,      -- insertion order within the creator's list

  PRIMARY KEY(token),
  CONSTRAINT asset_creators_asset_u UNIQUE (asset)
);
`
)

func init() {
	db.RegisterSchema(
		"registry",
		"asset_creators",
		assetCreatorsSQL,
	)
}
