package model

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/token"
)

// AssetOwner represents the membership of an asset in the list of assets
// currently owned by a principal. Every minted asset has exactly one
// AssetOwner row at any time; rows move between principals on transfer.
// Position preserves insertion order within an owner's list.
type AssetOwner struct {
	Token   string
	Created time.Time

	Owner    string // Owner principal.
	Asset    string // Asset id.
	Position int64
}

// AddAssetToOwner appends the asset to the owner's list. The caller must
// guarantee that the asset is not already in the list; no dedup check is
// performed.
func AddAssetToOwner(
	ctx context.Context,
	owner string,
	asset string,
) (*AssetOwner, error) {
	assetOwner := AssetOwner{
		Token:   token.New("asset_owner"),
		Created: time.Now().UTC(),

		Owner: owner,
		Asset: asset,
	}

	ext := db.Ext(ctx, "registry")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT COALESCE(MAX(position)+1, 0) AS position
FROM asset_owners
WHERE owner = :owner
`, assetOwner); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, errors.Trace(errors.Newf("No position returned"))
	} else if err := rows.Scan(&assetOwner.Position); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	if _, err := sqlx.NamedExec(ext, `
INSERT INTO asset_owners
  (token, created, owner, asset, position)
VALUES
  (:token, :created, :owner, :asset, :position)
`, assetOwner); err != nil {
		return nil, errors.Trace(err)
	}

	return &assetOwner, nil
}

// RemoveAssetFromOwner removes the asset from the owner's list. Removing an
// asset that is not in the list is a no-op, not an error.
func RemoveAssetFromOwner(
	ctx context.Context,
	owner string,
	asset string,
) error {
	ext := db.Ext(ctx, "registry")
	if _, err := sqlx.NamedExec(ext, `
DELETE FROM asset_owners
WHERE owner = :owner AND asset = :asset
`, AssetOwner{Owner: owner, Asset: asset}); err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadAssetTokensByOwner returns the ids of the assets currently owned by
// the principal, in insertion order. An empty list is returned for unknown
// principals.
func LoadAssetTokensByOwner(
	ctx context.Context,
	owner string,
) ([]string, error) {
	ext := db.Ext(ctx, "registry")
	rows, err := sqlx.NamedQuery(ext, `
SELECT asset
FROM asset_owners
WHERE owner = :owner
ORDER BY position ASC
`, AssetOwner{Owner: owner})
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
