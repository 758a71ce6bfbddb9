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
	// EndPtListCreatorAssets lists the assets minted by a principal.
	EndPtListCreatorAssets EndPtName = "ListCreatorAssets"
)

func init() {
	registrar[EndPtListCreatorAssets] = NewListCreatorAssets
}

// ListCreatorAssets returns the assets minted by a principal, oldest first.
// The creator list is append-only: transfers never remove an asset from it.
type ListCreatorAssets struct {
	Creator string
}

// NewListCreatorAssets constructs and initializes the endpoint.
func NewListCreatorAssets(
	r *http.Request,
) (Endpoint, error) {
	return &ListCreatorAssets{}, nil
}

// Validate validates the input parameters.
func (e *ListCreatorAssets) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	creator, err := ValidatePrincipal(ctx, pat.Param(r, "creator"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Creator = *creator

	return nil
}

// Execute executes the endpoint.
func (e *ListCreatorAssets) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	tokens, err := model.LoadAssetTokensByCreator(ctx, e.Creator)
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
