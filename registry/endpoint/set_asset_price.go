package endpoint

import (
	"context"
	"math/big"
	"net/http"

	"goji.io/pat"

	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/format"
	"github.com/JuinSoft/Celestium/lib/ptr"
	"github.com/JuinSoft/Celestium/lib/svc"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/lib/authentication"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// EndPtSetAssetPrice updates the price of an asset.
	EndPtSetAssetPrice EndPtName = "SetAssetPrice"
)

func init() {
	registrar[EndPtSetAssetPrice] = NewSetAssetPrice
}

// SetAssetPrice overwrites the price of an asset. The price is stored
// unconditionally; in particular negative prices are accepted.
type SetAssetPrice struct {
	Principal string
	ID        string
	Price     big.Int
}

// NewSetAssetPrice constructs and initializes the endpoint.
func NewSetAssetPrice(
	r *http.Request,
) (Endpoint, error) {
	return &SetAssetPrice{}, nil
}

// Validate validates the input parameters.
func (e *SetAssetPrice) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Principal = authentication.Get(ctx).User.Username

	id, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.ID = *id

	price, err := ValidatePrice(ctx, r.PostFormValue("price"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Price = *price

	return nil
}

// Execute executes the endpoint.
func (e *SetAssetPrice) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	asset, err := model.LoadAssetByToken(ctx, e.ID)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if asset == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			404, "asset_not_found",
			"The asset you are trying to price does not exist: %s.",
			e.ID,
		))
	}

	if asset.Owner != e.Principal {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "price_not_authorized",
			"You can only price assets owned by the account you are "+
				"currently authenticated with: %s. This asset is owned "+
				"by: %s.",
			e.Principal, asset.Owner,
		))
	}

	asset.Price = model.Amount(e.Price)
	if err := asset.Save(ctx); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusOK), &svc.Resp{
		"asset": format.JSONPtr(registry.NewAssetResource(ctx, asset)),
	}, nil
}
