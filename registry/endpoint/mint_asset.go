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
	"github.com/JuinSoft/Celestium/registry/lib/authentication"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// EndPtMintAsset mints a new asset.
	EndPtMintAsset EndPtName = "MintAsset"
)

func init() {
	registrar[EndPtMintAsset] = NewMintAsset
}

// MintAsset controls the creation of new assets. The authenticated principal
// becomes both creator and initial owner; the asset id is derived from the
// registry counter.
type MintAsset struct {
	Creator           string
	Name              string
	Description       string
	ImageURL          string
	RoyaltyPercentage int8
}

// NewMintAsset constructs and initializes the endpoint.
func NewMintAsset(
	r *http.Request,
) (Endpoint, error) {
	return &MintAsset{}, nil
}

// Validate validates the input parameters.
func (e *MintAsset) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Creator = authentication.Get(ctx).User.Username

	// Name, description and image_url are opaque descriptive strings and are
	// stored as provided.
	e.Name = r.PostFormValue("name")
	e.Description = r.PostFormValue("description")
	e.ImageURL = r.PostFormValue("image_url")

	royalty, err := ValidateRoyalty(ctx, r.PostFormValue("royalty_percentage"))
	if err != nil {
		return errors.Trace(err)
	}
	e.RoyaltyPercentage = *royalty

	return nil
}

// Execute executes the endpoint.
func (e *MintAsset) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	reg, err := model.LoadOrCreateRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	// The counter and the mint commit atomically: a failure below rolls the
	// increment back.
	reg.Counter++
	id := model.AssetIDForSequence(reg.Counter)

	asset, err := model.CreateAsset(ctx,
		id,
		e.Name,
		e.Description,
		e.ImageURL,
		e.Creator,
		e.RoyaltyPercentage,
		model.Amount(*model.DefaultAssetPrice),
	)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	if _, err := model.AddAssetToCreator(ctx, e.Creator, id); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	if _, err := model.AddAssetToOwner(ctx, e.Creator, id); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	if err := reg.Save(ctx); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"asset": format.JSONPtr(registry.NewAssetResource(ctx, asset)),
	}, nil
}
