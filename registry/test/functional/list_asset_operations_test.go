package functional

import (
	"math/big"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/registry"
)

func TestListAssetOperationsOrder(
	t *testing.T,
) {
	r, creator, buyer, asset := setupTransferAsset(t)

	price := asset.Price
	royalty := new(big.Int).Div(
		new(big.Int).Mul(price, big.NewInt(10)), big.NewInt(100))
	seller := new(big.Int).Sub(price, royalty)

	buyer.Post(t, "/balances/"+buyer.Username+"/fund", url.Values{
		"amount": {price.String()},
	})
	creator.Post(t, "/assets/"+asset.ID+"/transfer", url.Values{
		"to":     {buyer.Username},
		"amount": {price.String()},
	})

	// Transfer back immediately; the four legs execute within the same
	// timestamp tick, so the listing order must not depend on created alone.
	buyer.Post(t, "/assets/"+asset.ID+"/transfer", url.Values{
		"to":     {creator.Username},
		"amount": {price.String()},
	})

	_, raw := r.Get(t, "/assets/"+asset.ID+"/operations")
	var operations []registry.OperationResource
	if err := raw.Extract("operations", &operations); err != nil {
		t.Fatal(err)
	}

	if assert.Len(t, operations, 4) {
		assert.Equal(t, "seller", operations[0].Kind)
		assert.Equal(t, creator.Username, operations[0].Destination)
		assert.Equal(t, 0, operations[0].Amount.Cmp(seller))

		assert.Equal(t, "royalty", operations[1].Kind)
		assert.Equal(t, creator.Username, operations[1].Destination)
		assert.Equal(t, 0, operations[1].Amount.Cmp(royalty))

		assert.Equal(t, "seller", operations[2].Kind)
		assert.Equal(t, buyer.Username, operations[2].Destination)
		assert.Equal(t, 0, operations[2].Amount.Cmp(seller))

		assert.Equal(t, "royalty", operations[3].Kind)
		assert.Equal(t, creator.Username, operations[3].Destination)
		assert.Equal(t, 0, operations[3].Amount.Cmp(royalty))
	}
}
