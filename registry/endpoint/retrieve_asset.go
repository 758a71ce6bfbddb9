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
	// EndPtRetrieveAsset retrieves an asset.
	EndPtRetrieveAsset EndPtName = "RetrieveAsset"
)

func init() {
	registrar[EndPtRetrieveAsset] = NewRetrieveAsset
}

// RetrieveAsset retrieves an asset by its id. It is not authenticated.
type RetrieveAsset struct {
	ID string
}

// NewRetrieveAsset constructs and initializes the endpoint.
func NewRetrieveAsset(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveAsset{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveAsset) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	id, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.ID = *id

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveAsset) Execute(
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
			"The asset you are trying to retrieve does not exist: %s.",
			e.ID,
		))
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusOK), &svc.Resp{
		"asset": format.JSONPtr(registry.NewAssetResource(ctx, asset)),
	}, nil
}
