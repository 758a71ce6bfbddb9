package functional

import (
	"math/big"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/test"
)

func setupTransferAsset(
	t *testing.T,
) (*test.Registry, *test.RegistryUser, *test.RegistryUser, registry.AssetResource) {
	r := test.CreateRegistry(t)
	creator := r.CreateUser(t)
	buyer := r.CreateUser(t)

	_, raw := creator.Post(t, "/assets", url.Values{
		"name":               {"Nebula"},
		"royalty_percentage": {"10"},
	})

	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}

	return r, creator, buyer, asset
}

func TestTransferAsset(
	t *testing.T,
) {
	r, creator, buyer, asset := setupTransferAsset(t)

	price := asset.Price

	status, _ := buyer.Post(t,
		"/balances/"+buyer.Username+"/fund",
		url.Values{
			"amount": {price.String()},
		})
	assert.Equal(t, 201, status)

	status, raw := creator.Post(t,
		"/assets/"+asset.ID+"/transfer",
		url.Values{
			"to":     {buyer.Username},
			"amount": {price.String()},
		})
	assert.Equal(t, 200, status)

	var transferred registry.AssetResource
	if err := raw.Extract("asset", &transferred); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buyer.Username, transferred.Owner)
	assert.Equal(t, creator.Username, transferred.Creator)

	// Ownership index moved; creator index untouched.
	_, raw = r.Get(t, "/owners/"+creator.Username+"/assets")
	var creatorOwned []registry.AssetResource
	if err := raw.Extract("assets", &creatorOwned); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, creatorOwned, 0)

	_, raw = r.Get(t, "/owners/"+buyer.Username+"/assets")
	var buyerOwned []registry.AssetResource
	if err := raw.Extract("assets", &buyerOwned); err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, buyerOwned, 1) {
		assert.Equal(t, asset.ID, buyerOwned[0].ID)
	}

	_, raw = r.Get(t, "/creators/"+creator.Username+"/assets")
	var created []registry.AssetResource
	if err := raw.Extract("assets", &created); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, created, 1)

	// Seller and creator are the same principal here so the seller leg and
	// the royalty leg both land on the creator's balance.
	_, raw = r.Get(t, "/balances/"+creator.Username)
	var creatorBalance registry.BalanceResource
	if err := raw.Extract("balance", &creatorBalance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, creatorBalance.Value.Cmp(price))

	_, raw = r.Get(t, "/balances/"+buyer.Username)
	var buyerBalance registry.BalanceResource
	if err := raw.Extract("balance", &buyerBalance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, buyerBalance.Value.Cmp(big.NewInt(0)))

	// Two legs: the seller leg and the royalty leg.
	_, raw = r.Get(t, "/assets/"+asset.ID+"/operations")
	var operations []registry.OperationResource
	if err := raw.Extract("operations", &operations); err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, operations, 2) {
		seller := new(big.Int).Sub(price,
			new(big.Int).Div(
				new(big.Int).Mul(price, big.NewInt(10)), big.NewInt(100)))
		royalty := new(big.Int).Div(
			new(big.Int).Mul(price, big.NewInt(10)), big.NewInt(100))

		assert.Equal(t, "seller", operations[0].Kind)
		assert.Equal(t, 0, operations[0].Amount.Cmp(seller))
		if assert.NotNil(t, operations[0].Source) {
			assert.Equal(t, buyer.Username, *operations[0].Source)
		}
		assert.Equal(t, creator.Username, operations[0].Destination)

		assert.Equal(t, "royalty", operations[1].Kind)
		assert.Equal(t, 0, operations[1].Amount.Cmp(royalty))
		assert.Equal(t, creator.Username, operations[1].Destination)
	}
}

func TestTransferAssetThroughThirdParty(
	t *testing.T,
) {
	r, creator, buyer, asset := setupTransferAsset(t)
	third := r.CreateUser(t)

	price := asset.Price

	buyer.Post(t, "/balances/"+buyer.Username+"/fund", url.Values{
		"amount": {price.String()},
	})
	creator.Post(t, "/assets/"+asset.ID+"/transfer", url.Values{
		"to":     {buyer.Username},
		"amount": {price.String()},
	})

	third.Post(t, "/balances/"+third.Username+"/fund", url.Values{
		"amount": {price.String()},
	})
	status, _ := buyer.Post(t, "/assets/"+asset.ID+"/transfer", url.Values{
		"to":     {third.Username},
		"amount": {price.String()},
	})
	assert.Equal(t, 200, status)

	// The royalty goes to the creator, the rest to the seller.
	royalty := new(big.Int).Div(
		new(big.Int).Mul(price, big.NewInt(10)), big.NewInt(100))
	seller := new(big.Int).Sub(price, royalty)

	_, raw := r.Get(t, "/balances/"+buyer.Username)
	var buyerBalance registry.BalanceResource
	if err := raw.Extract("balance", &buyerBalance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, buyerBalance.Value.Cmp(seller))

	expCreator := new(big.Int).Add(price, royalty)
	_, raw = r.Get(t, "/balances/"+creator.Username)
	var creatorBalance registry.BalanceResource
	if err := raw.Extract("balance", &creatorBalance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, creatorBalance.Value.Cmp(expCreator))
}

func TestTransferAssetPaymentInsufficient(
	t *testing.T,
) {
	r, creator, buyer, asset := setupTransferAsset(t)

	low := new(big.Int).Sub(asset.Price, big.NewInt(1))

	buyer.Post(t, "/balances/"+buyer.Username+"/fund", url.Values{
		"amount": {asset.Price.String()},
	})

	status, raw := creator.Post(t,
		"/assets/"+asset.ID+"/transfer",
		url.Values{
			"to":     {buyer.Username},
			"amount": {low.String()},
		})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "payment_insufficient", e.Code)

	// Nothing moved.
	_, raw = r.Get(t, "/assets/"+asset.ID)
	var unchanged registry.AssetResource
	if err := raw.Extract("asset", &unchanged); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, creator.Username, unchanged.Owner)

	_, raw = r.Get(t, "/balances/"+buyer.Username)
	var buyerBalance registry.BalanceResource
	if err := raw.Extract("balance", &buyerBalance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, buyerBalance.Value.Cmp(asset.Price))
}

func TestTransferAssetFundsInsufficient(
	t *testing.T,
) {
	r, creator, buyer, asset := setupTransferAsset(t)

	status, raw := creator.Post(t,
		"/assets/"+asset.ID+"/transfer",
		url.Values{
			"to":     {buyer.Username},
			"amount": {asset.Price.String()},
		})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "funds_insufficient", e.Code)

	_, raw = r.Get(t, "/assets/"+asset.ID)
	var unchanged registry.AssetResource
	if err := raw.Extract("asset", &unchanged); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, creator.Username, unchanged.Owner)
}

func TestTransferAssetNotAuthorized(
	t *testing.T,
) {
	_, _, buyer, asset := setupTransferAsset(t)

	buyer.Post(t, "/balances/"+buyer.Username+"/fund", url.Values{
		"amount": {asset.Price.String()},
	})

	status, raw := buyer.Post(t,
		"/assets/"+asset.ID+"/transfer",
		url.Values{
			"to":     {buyer.Username},
			"amount": {asset.Price.String()},
		})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "transfer_not_authorized", e.Code)
}

func TestTransferAssetNotFound(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, raw := user.Post(t,
		"/assets/asset_42/transfer",
		url.Values{
			"to":     {user.Username},
			"amount": {"0"},
		})
	assert.Equal(t, 404, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_not_found", e.Code)
}

func TestTransferAssetToSelf(
	t *testing.T,
) {
	r, creator, _, asset := setupTransferAsset(t)

	creator.Post(t, "/balances/"+creator.Username+"/fund", url.Values{
		"amount": {asset.Price.String()},
	})

	// A self transfer pays in full and reindexes; the owner ends up with the
	// asset and the full payment back on their balance.
	status, _ := creator.Post(t,
		"/assets/"+asset.ID+"/transfer",
		url.Values{
			"to":     {creator.Username},
			"amount": {asset.Price.String()},
		})
	assert.Equal(t, 200, status)

	_, raw := r.Get(t, "/owners/"+creator.Username+"/assets")
	var owned []registry.AssetResource
	if err := raw.Extract("assets", &owned); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, owned, 1)

	_, raw = r.Get(t, "/balances/"+creator.Username)
	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, balance.Value.Cmp(asset.Price))
}
