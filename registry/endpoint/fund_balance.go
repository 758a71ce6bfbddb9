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
	// EndPtFundBalance credits the balance of a principal.
	EndPtFundBalance EndPtName = "FundBalance"
)

func init() {
	registrar[EndPtFundBalance] = NewFundBalance
}

// FundBalance credits the authenticated principal's balance. Funding legs are
// recorded as operations with no source and no asset.
type FundBalance struct {
	Principal string
	Holder    string
	Amount    big.Int
}

// NewFundBalance constructs and initializes the endpoint.
func NewFundBalance(
	r *http.Request,
) (Endpoint, error) {
	return &FundBalance{}, nil
}

// Validate validates the input parameters.
func (e *FundBalance) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Principal = authentication.Get(ctx).User.Username

	holder, err := ValidatePrincipal(ctx, pat.Param(r, "holder"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Holder = *holder

	amount, err := ValidateAmount(ctx, r.PostFormValue("amount"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Amount = *amount

	return nil
}

// Execute executes the endpoint.
func (e *FundBalance) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	if e.Holder != e.Principal {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "funding_not_authorized",
			"You can only fund the balance of the account you are "+
				"currently authenticated with: %s.",
			e.Principal,
		))
	}

	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	balance, err := model.LoadOrCreateBalanceByHolder(ctx, e.Holder)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	value := new(big.Int).Add((*big.Int)(&balance.Value), &e.Amount)
	if value.Cmp(model.MaxAmount) >= 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "amount_invalid",
			"The resulting balance exceeds the maximal value "+
				"representable on the registry: %s.",
			value.String(),
		))
	}
	balance.Value = model.Amount(*value)
	if err := balance.Save(ctx); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	_, err = model.CreateOperation(ctx,
		nil,
		e.Holder,
		model.Amount(e.Amount),
		nil,
		model.OpKdFund,
	)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"balance": format.JSONPtr(registry.NewBalanceResource(ctx, balance)),
	}, nil
}
