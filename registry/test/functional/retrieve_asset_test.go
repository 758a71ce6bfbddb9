package functional

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/test"
)

func TestRetrieveAsset(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	_, raw := user.Post(t, "/assets", url.Values{
		"name":               {"Nebula"},
		"description":        {"A swirl of gas."},
		"royalty_percentage": {"10"},
	})
	var minted registry.AssetResource
	if err := raw.Extract("asset", &minted); err != nil {
		t.Fatal(err)
	}

	// Retrieval is public.
	status, raw := r.Get(t, "/assets/"+minted.ID)
	assert.Equal(t, 200, status)

	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, minted.ID, asset.ID)
	assert.Equal(t, "Nebula", asset.Name)
	assert.Equal(t, user.Username, asset.Owner)
}

func TestRetrieveAssetNotFound(
	t *testing.T,
) {
	r := test.CreateRegistry(t)

	status, raw := r.Get(t, "/assets/asset_42")
	assert.Equal(t, 404, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_not_found", e.Code)
}

func TestListAssetOperationsNotFound(
	t *testing.T,
) {
	r := test.CreateRegistry(t)

	status, raw := r.Get(t, "/assets/asset_42/operations")
	assert.Equal(t, 404, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_not_found", e.Code)
}
