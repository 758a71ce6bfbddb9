package registry

import (
	"context"
	"math/big"

	"github.com/JuinSoft/Celestium/registry/model"
)

// RegistryResource is the representation of the registry singleton in the
// API.
type RegistryResource struct {
	Created int64   `json:"created_at"`
	Admin   *string `json:"admin"`
	Counter int64   `json:"counter"`
}

// NewRegistryResource generates a new resource.
func NewRegistryResource(
	ctx context.Context,
	reg *model.Registry,
) RegistryResource {
	return RegistryResource{
		Created: reg.Created.UnixNano() / (1000 * 1000),
		Admin:   reg.Admin,
		Counter: reg.Counter,
	}
}

// AssetResource is the representation of an asset in the registry API.
type AssetResource struct {
	ID      string `json:"id"`
	Created int64  `json:"created_at"`

	Name              string   `json:"name"`
	Description       string   `json:"description"`
	ImageURL          string   `json:"image_url"`
	Creator           string   `json:"creator"`
	Owner             string   `json:"owner"`
	RoyaltyPercentage int8     `json:"royalty_percentage"`
	Price             *big.Int `json:"price"`
}

// NewAssetResource generates a new resource.
func NewAssetResource(
	ctx context.Context,
	asset *model.Asset,
) AssetResource {
	return AssetResource{
		ID:      asset.Token,
		Created: asset.Created.UnixNano() / (1000 * 1000),

		Name:              asset.Name,
		Description:       asset.Description,
		ImageURL:          asset.ImageURL,
		Creator:           asset.Creator,
		Owner:             asset.Owner,
		RoyaltyPercentage: asset.RoyaltyPercentage,
		Price:             (*big.Int)(&asset.Price),
	}
}

// BalanceResource is the representation of a balance in the registry API.
type BalanceResource struct {
	Created int64 `json:"created_at"`

	Holder string   `json:"holder"`
	Value  *big.Int `json:"value"`
}

// NewBalanceResource generates a new resource.
func NewBalanceResource(
	ctx context.Context,
	balance *model.Balance,
) BalanceResource {
	return BalanceResource{
		Created: balance.Created.UnixNano() / (1000 * 1000),
		Holder:  balance.Holder,
		Value:   (*big.Int)(&balance.Value),
	}
}

// OperationResource is the representation of a value-transfer leg in the
// registry API.
type OperationResource struct {
	ID      string `json:"id"`
	Created int64  `json:"created_at"`

	Source      *string  `json:"source"`
	Destination string   `json:"destination"`
	Amount      *big.Int `json:"amount"`
	Asset       *string  `json:"asset"`
	Kind        string   `json:"kind"`
}

// NewOperationResource generates a new resource.
func NewOperationResource(
	ctx context.Context,
	operation *model.Operation,
) OperationResource {
	return OperationResource{
		ID:      operation.Token,
		Created: operation.Created.UnixNano() / (1000 * 1000),

		Source:      operation.Source,
		Destination: operation.Destination,
		Amount:      (*big.Int)(&operation.Amount),
		Asset:       operation.Asset,
		Kind:        string(operation.Kind),
	}
}
