package endpoint

import (
	"context"
	"net/http"

	"goji.io/pat"

	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/format"
	"github.com/JuinSoft/Celestium/lib/ptr"
	"github.com/JuinSoft/Celestium/lib/svc"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// EndPtListOwnerAssets lists the assets currently owned by a principal.
	EndPtListOwnerAssets EndPtName = "ListOwnerAssets"
)

func init() {
	registrar[EndPtListOwnerAssets] = NewListOwnerAssets
}

// ListOwnerAssets returns the assets owned by a principal, in the order they
// were acquired. Unknown principals yield an empty list rather than an error.
type ListOwnerAssets struct {
	Owner string
}

// NewListOwnerAssets constructs and initializes the endpoint.
func NewListOwnerAssets(
	r *http.Request,
) (Endpoint, error) {
	return &ListOwnerAssets{}, nil
}

// Validate validates the input parameters.
func (e *ListOwnerAssets) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	owner, err := ValidatePrincipal(ctx, pat.Param(r, "owner"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Owner = *owner

	return nil
}

// Execute executes the endpoint.
func (e *ListOwnerAssets) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	tokens, err := model.LoadAssetTokensByOwner(ctx, e.Owner)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	assets := []registry.AssetResource{}
	for _, tk := range tokens {
		asset, err := model.LoadAssetByToken(ctx, tk)
		if err != nil {
			return nil, nil, errors.Trace(err) // 500
		} else if asset == nil {
			continue
		}
		assets = append(assets, registry.NewAssetResource(ctx, asset))
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusOK), &svc.Resp{
		"assets": format.JSONPtr(assets),
	}, nil
}
