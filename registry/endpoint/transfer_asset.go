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
	"github.com/JuinSoft/Celestium/registry/lib/payment"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// EndPtTransferAsset transfers an asset to a new owner.
	EndPtTransferAsset EndPtName = "TransferAsset"
)

func init() {
	registrar[EndPtTransferAsset] = NewTransferAsset
}

// TransferAsset transfers an asset to a recipient against a payment. The
// payment is split between the current owner (seller leg) and the creator
// (royalty leg) and is debited from the recipient's balance. A transfer to
// the current owner is not special-cased: it pays and reindexes all the
// same.
type TransferAsset struct {
	Principal string
	ID        string
	To        string
	Amount    big.Int
}

// NewTransferAsset constructs and initializes the endpoint.
func NewTransferAsset(
	r *http.Request,
) (Endpoint, error) {
	return &TransferAsset{}, nil
}

// Validate validates the input parameters.
func (e *TransferAsset) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Principal = authentication.Get(ctx).User.Username

	id, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.ID = *id

	to, err := ValidatePrincipal(ctx, r.PostFormValue("to"))
	if err != nil {
		return errors.Trace(err)
	}
	e.To = *to

	amount, err := ValidateAmount(ctx, r.PostFormValue("amount"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Amount = *amount

	return nil
}

// Execute executes the endpoint.
func (e *TransferAsset) Execute(
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
			"The asset you are trying to transfer does not exist: %s.",
			e.ID,
		))
	}

	if asset.Owner != e.Principal {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "transfer_not_authorized",
			"You can only transfer assets owned by the account you are "+
				"currently authenticated with: %s. This asset is owned "+
				"by: %s.",
			e.Principal, asset.Owner,
		))
	}

	if e.Amount.Cmp((*big.Int)(&asset.Price)) < 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "payment_insufficient",
			"The payment amount is less than the asset price: %s < %s.",
			e.Amount.String(), (*big.Int)(&asset.Price).String(),
		))
	}

	err = payment.Settle(ctx,
		asset.Token,
		e.To,
		asset.Owner,
		asset.Creator,
		&e.Amount,
		asset.RoyaltyPercentage,
	)
	if err != nil {
		switch err := errors.Cause(err).(type) {
		case payment.ErrInsufficientFunds:
			return nil, nil, errors.Trace(errors.NewUserErrorf(err,
				400, "funds_insufficient",
				"The recipient's balance does not cover the payment: %s "+
					"is missing funds for %s.",
				err.Holder, err.Required.String(),
			))
		default:
			return nil, nil, errors.Trace(err) // 500
		}
	}

	prevOwner := asset.Owner
	asset.Owner = e.To
	if err := asset.Save(ctx); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	if err := model.RemoveAssetFromOwner(ctx, prevOwner, asset.Token); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	if _, err := model.AddAssetToOwner(ctx, e.To, asset.Token); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusOK), &svc.Resp{
		"asset": format.JSONPtr(registry.NewAssetResource(ctx, asset)),
	}, nil
}
