package model

import (
	"context"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
)

const (
	// AssetMinRoyalty is the minimal royalty percentage of an asset.
	AssetMinRoyalty int8 = 0
	// AssetMaxRoyalty is the maximal royalty percentage of an asset.
	AssetMaxRoyalty int8 = 100
)

// DefaultAssetPrice is the price assigned to assets at mint time.
var DefaultAssetPrice = big.NewInt(1000000000)

// AssetIDRegexp is used to validate asset ids.
var AssetIDRegexp = regexp.MustCompile("^asset_[0-9]+$")

// AssetIDForSequence returns the id of the asset minted at the provided
// sequence number (1-based). Ids are derived deterministically from the
// registry counter, which is what makes range listing possible.
func AssetIDForSequence(
	seq int64,
) string {
	return fmt.Sprintf("asset_%d", seq)
}

// Asset represents a registered asset. The creator and descriptive fields
// are fixed at mint time; only the owner (on transfer) and the price (on
// price update) ever change.
type Asset struct {
	Token   string // Sequential public id.
	Created time.Time

	Name              string
	Description       string
	ImageURL          string `db:"image_url"`
	Creator           string // Creator principal, immutable.
	Owner             string // Current owner principal.
	RoyaltyPercentage int8   `db:"royalty_percentage"`
	Price             Amount
}

// CreateAsset creates and stores a new Asset object.
func CreateAsset(
	ctx context.Context,
	token string,
	name string,
	description string,
	imageURL string,
	creator string,
	royaltyPercentage int8,
	price Amount,
) (*Asset, error) {
	asset := Asset{
		Token:   token,
		Created: time.Now().UTC(),

		Name:              name,
		Description:       description,
		ImageURL:          imageURL,
		Creator:           creator,
		Owner:             creator,
		RoyaltyPercentage: royaltyPercentage,
		Price:             price,
	}

	ext := db.Ext(ctx, "registry")
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO assets
  (token, created, name, description, image_url, creator, owner,
   royalty_percentage, price)
VALUES
  (:token, :created, :name, :description, :image_url, :creator, :owner,
   :royalty_percentage, :price)
`, asset); err != nil {
		switch err := err.(type) {
		case *pq.Error:
			if err.Code.Name() == "unique_violation" {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		case sqlite3.Error:
			if err.ExtendedCode == sqlite3.ErrConstraintUnique {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		}
		return nil, errors.Trace(err)
	}

	return &asset, nil
}

// Save updates the object database representation with the in-memory values.
// Only the mutable fields are written back.
func (a *Asset) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx, "registry")
	_, err := sqlx.NamedExec(ext, `
UPDATE assets
SET owner = :owner, price = :price
WHERE token = :token
`, a)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadAssetByToken attempts to load an asset by its id.
func LoadAssetByToken(
	ctx context.Context,
	token string,
) (*Asset, error) {
	asset := Asset{
		Token: token,
	}

	ext := db.Ext(ctx, "registry")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM assets
WHERE token = :token
`, asset); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		if err := rows.Close(); err != nil {
			return nil, errors.Trace(err)
		}
		return nil, nil
	} else if err := rows.StructScan(&asset); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &asset, nil
}
