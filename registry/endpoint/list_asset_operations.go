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
	// EndPtListAssetOperations lists the value-transfer legs executed for an
	// asset.
	EndPtListAssetOperations EndPtName = "ListAssetOperations"
)

func init() {
	registrar[EndPtListAssetOperations] = NewListAssetOperations
}

// ListAssetOperations returns the operations executed for an asset, oldest
// first. A transfer shows up as a seller leg followed by a royalty leg when
// the royalty amount was positive.
type ListAssetOperations struct {
	ID string
}

// NewListAssetOperations constructs and initializes the endpoint.
func NewListAssetOperations(
	r *http.Request,
) (Endpoint, error) {
	return &ListAssetOperations{}, nil
}

// Validate validates the input parameters.
func (e *ListAssetOperations) Validate(
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
func (e *ListAssetOperations) Execute(
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
			"The asset you are trying to retrieve operations for does not "+
				"exist: %s.",
			e.ID,
		))
	}

	operations, err := model.LoadOperationsByAsset(ctx, e.ID)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	resources := []registry.OperationResource{}
	for i := range operations {
		resources = append(resources,
			registry.NewOperationResource(ctx, &operations[i]))
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusOK), &svc.Resp{
		"operations": format.JSONPtr(resources),
	}, nil
}
