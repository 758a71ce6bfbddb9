package endpoint

import (
	"context"
	"net/http"

	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/format"
	"github.com/JuinSoft/Celestium/lib/ptr"
	"github.com/JuinSoft/Celestium/lib/svc"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// EndPtListAssets lists minted assets by sequence range.
	EndPtListAssets EndPtName = "ListAssets"
)

func init() {
	registrar[EndPtListAssets] = NewListAssets
}

// ListAssets returns the assets minted in the half-open sequence range
// [offset, offset+limit), clamped to the number of minted assets. It relies
// on the sequential id scheme; an id missing from storage is skipped rather
// than failing the list.
type ListAssets struct {
	Limit  int64
	Offset int64
}

// NewListAssets constructs and initializes the endpoint.
func NewListAssets(
	r *http.Request,
) (Endpoint, error) {
	return &ListAssets{}, nil
}

// Validate validates the input parameters.
func (e *ListAssets) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	limit, err := ValidateLimit(ctx, r.URL.Query().Get("limit"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Limit = *limit

	offset, err := ValidateOffset(ctx, r.URL.Query().Get("offset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Offset = *offset

	return nil
}

// Execute executes the endpoint.
func (e *ListAssets) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	reg, err := model.LoadOrCreateRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	start := e.Offset
	if start > reg.Counter {
		start = reg.Counter
	}
	end := e.Offset + e.Limit
	if end > reg.Counter {
		end = reg.Counter
	}

	assets := []registry.AssetResource{}
	for seq := start + 1; seq <= end; seq++ {
		asset, err := model.LoadAssetByToken(ctx,
			model.AssetIDForSequence(seq))
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
