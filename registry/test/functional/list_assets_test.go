package functional

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/test"
)

func setupListAssets(
	t *testing.T,
) *test.Registry {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	for i := 0; i < 5; i++ {
		user.Post(t, "/assets", url.Values{
			"name":               {fmt.Sprintf("Asset %d", i)},
			"royalty_percentage": {"0"},
		})
	}

	return r
}

func TestListAssets(
	t *testing.T,
) {
	r := setupListAssets(t)

	status, raw := r.Get(t, "/assets?limit=2&offset=0")
	assert.Equal(t, 200, status)

	var assets []registry.AssetResource
	if err := raw.Extract("assets", &assets); err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, assets, 2) {
		assert.Equal(t, "asset_1", assets[0].ID)
		assert.Equal(t, "asset_2", assets[1].ID)
	}
}

func TestListAssetsClampsToCounter(
	t *testing.T,
) {
	r := setupListAssets(t)

	status, raw := r.Get(t, "/assets?limit=10&offset=4")
	assert.Equal(t, 200, status)

	var assets []registry.AssetResource
	if err := raw.Extract("assets", &assets); err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, assets, 1) {
		assert.Equal(t, "asset_5", assets[0].ID)
	}

	status, raw = r.Get(t, "/assets?limit=10&offset=10")
	assert.Equal(t, 200, status)

	if err := raw.Extract("assets", &assets); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, assets, 0)
}

func TestListAssetsDefaults(
	t *testing.T,
) {
	r := setupListAssets(t)

	status, raw := r.Get(t, "/assets")
	assert.Equal(t, 200, status)

	var assets []registry.AssetResource
	if err := raw.Extract("assets", &assets); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, assets, 5)
}

func TestListAssetsEmptyRegistry(
	t *testing.T,
) {
	r := test.CreateRegistry(t)

	status, raw := r.Get(t, "/assets")
	assert.Equal(t, 200, status)

	var assets []registry.AssetResource
	if err := raw.Extract("assets", &assets); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, assets, 0)
}
