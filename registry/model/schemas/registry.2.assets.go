package schemas

import "github.com/JuinSoft/Celestium/lib/db"

const (
	assetsSQL = `
CREATE TABLE IF NOT EXISTS assets(
  token VARCHAR(256) NOT NULL,     -- sequential asset id
  created TIMESTAMP NOT NULL,

  name VARCHAR(256) NOT NULL,      -- descriptive name
  description TEXT NOT NULL,       -- descriptive text
  image_url TEXT NOT NULL,         -- descriptive image url
  creator VARCHAR(256) NOT NULL,   -- creator principal, immutable
  owner VARCHAR(256) NOT NULL,     -- current owner principal
  royalty_percentage SMALLINT NOT NULL, -- royalty percentage in [0,100]
  price VARCHAR(64) NOT NULL,      -- current price

  PRIMARY KEY(token)
);
`
)

func init() {
	db.RegisterSchema(
		"registry",
		"assets",
		assetsSQL,
	)
}
