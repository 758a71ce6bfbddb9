package schemas

import "github.com/JuinSoft/Celestium/lib/db"

const (
	usersSQL = `
CREATE TABLE IF NOT EXISTS users(
  token VARCHAR(256) NOT NULL,         -- token
  created TIMESTAMP NOT NULL,

  username VARCHAR(256) NOT NULL,      -- username
  password_hash VARCHAR(256) NOT NULL, -- scrypt password hash

  PRIMARY KEY(token),
  CONSTRAINT users_username_u UNIQUE (username)
);
`
)

func init() {
	db.RegisterSchema(
		"registry",
		"users",
		usersSQL,
	)
}
