package functional

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/test"
)

func TestSetAssetPrice(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	_, raw := user.Post(t, "/assets", url.Values{
		"name":               {"Nebula"},
		"royalty_percentage": {"5"},
	})
	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}

	status, raw := user.Post(t,
		"/assets/"+asset.ID+"/price",
		url.Values{
			"price": {"42"},
		})
	assert.Equal(t, 200, status)

	var updated registry.AssetResource
	if err := raw.Extract("asset", &updated); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "42", updated.Price.String())

	_, raw = r.Get(t, "/assets/"+asset.ID)
	if err := raw.Extract("asset", &updated); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "42", updated.Price.String())
}

func TestSetAssetPriceNegative(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	_, raw := user.Post(t, "/assets", url.Values{
		"name":               {"Nebula"},
		"royalty_percentage": {"5"},
	})
	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}

	// Negative prices are stored as provided.
	status, raw := user.Post(t,
		"/assets/"+asset.ID+"/price",
		url.Values{
			"price": {"-1"},
		})
	assert.Equal(t, 200, status)

	var updated registry.AssetResource
	if err := raw.Extract("asset", &updated); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "-1", updated.Price.String())
}

func TestSetAssetPriceNotAuthorized(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	other := r.CreateUser(t)

	_, raw := owner.Post(t, "/assets", url.Values{
		"name":               {"Nebula"},
		"royalty_percentage": {"5"},
	})
	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}

	status, raw := other.Post(t,
		"/assets/"+asset.ID+"/price",
		url.Values{
			"price": {"42"},
		})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "price_not_authorized", e.Code)
}

func TestSetAssetPriceNotFound(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, raw := user.Post(t,
		"/assets/asset_42/price",
		url.Values{
			"price": {"42"},
		})
	assert.Equal(t, 404, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_not_found", e.Code)
}
