package model

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/token"
)

// AssetCreator represents the membership of an asset in the list of assets
// created by a principal. The list is append-only: creation attribution is
// never rewritten, whatever happens to ownership.
type AssetCreator struct {
	Token   string
	Created time.Time

	Creator  string // Creator principal.
	Asset    string // Asset id.
	Position int64
}

// AddAssetToCreator appends the asset to the creator's list.
func AddAssetToCreator(
	ctx context.Context,
	creator string,
	asset string,
) (*AssetCreator, error) {
	assetCreator := AssetCreator{
		Token:   token.New("asset_creator"),
		Created: time.Now().UTC(),

		Creator: creator,
		Asset:   asset,
	}

	ext := db.Ext(ctx, "registry")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT COALESCE(MAX(position)+1, 0) AS position
FROM asset_creators
WHERE creator = :creator
`, assetCreator); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, errors.Trace(errors.Newf("No position returned"))
	} else if err := rows.Scan(&assetCreator.Position); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	if _, err := sqlx.NamedExec(ext, `
INSERT INTO asset_creators
  (token, created, creator, asset, position)
VALUES
  (:token, :created, :creator, :asset, :position)
`, assetCreator); err != nil {
		return nil, errors.Trace(err)
	}

	return &assetCreator, nil
}

// LoadAssetTokensByCreator returns the ids of the assets ever created by the
// principal, in mint order. An empty list is returned for unknown principals.
func LoadAssetTokensByCreator(
	ctx context.Context,
	creator string,
) ([]string, error) {
	ext := db.Ext(ctx, "registry")
	rows, err := sqlx.NamedQuery(ext, `
SELECT asset
FROM asset_creators
WHERE creator = :creator
ORDER BY position ASC
`, AssetCreator{Creator: creator})
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer rows.Close()

	tokens := []string{}
	for rows.Next() {
		var asset string
		if err := rows.Scan(&asset); err != nil {
			return nil, errors.Trace(err)
		}
		tokens = append(tokens, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	return tokens, nil
}
