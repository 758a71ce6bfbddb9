package functional

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/model"
	"github.com/JuinSoft/Celestium/registry/test"
)

func TestMintAssetSimple(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, raw := user.Post(t, "/assets", url.Values{
		"name":               {"Nebula"},
		"description":        {"A swirl of gas."},
		"image_url":          {"https://img.example.com/nebula.png"},
		"royalty_percentage": {"10"},
	})

	assert.Equal(t, 201, status)

	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}

	assert.Regexp(t, model.AssetIDRegexp, asset.ID)
	assert.Equal(t, "asset_1", asset.ID)
	assert.WithinDuration(t,
		time.Now(), time.Unix(0, asset.Created*1000*1000), 2*time.Second)
	assert.Equal(t, "Nebula", asset.Name)
	assert.Equal(t, "A swirl of gas.", asset.Description)
	assert.Equal(t, "https://img.example.com/nebula.png", asset.ImageURL)
	assert.Equal(t, user.Username, asset.Creator)
	assert.Equal(t, user.Username, asset.Owner)
	assert.Equal(t, int8(10), asset.RoyaltyPercentage)
	assert.Equal(t, 0, asset.Price.Cmp(model.DefaultAssetPrice))
}

func TestMintAssetSequentialIDs(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	u0 := r.CreateUser(t)
	u1 := r.CreateUser(t)

	_, raw := u0.Post(t, "/assets", url.Values{
		"name":               {"First"},
		"royalty_percentage": {"0"},
	})
	var a0 registry.AssetResource
	if err := raw.Extract("asset", &a0); err != nil {
		t.Fatal(err)
	}

	_, raw = u1.Post(t, "/assets", url.Values{
		"name":               {"Second"},
		"royalty_percentage": {"0"},
	})
	var a1 registry.AssetResource
	if err := raw.Extract("asset", &a1); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "asset_1", a0.ID)
	assert.Equal(t, "asset_2", a1.ID)

	status, raw := r.Get(t, "/assets/asset_2")
	assert.Equal(t, 200, status)

	var retrieved registry.AssetResource
	if err := raw.Extract("asset", &retrieved); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, u1.Username, retrieved.Creator)
}

func TestMintAssetIndexesCreatorAndOwner(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	user.Post(t, "/assets", url.Values{
		"name":               {"A"},
		"royalty_percentage": {"0"},
	})
	user.Post(t, "/assets", url.Values{
		"name":               {"B"},
		"royalty_percentage": {"0"},
	})

	status, raw := r.Get(t, "/owners/"+user.Username+"/assets")
	assert.Equal(t, 200, status)

	var owned []registry.AssetResource
	if err := raw.Extract("assets", &owned); err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, owned, 2) {
		assert.Equal(t, "asset_1", owned[0].ID)
		assert.Equal(t, "asset_2", owned[1].ID)
	}

	status, raw = r.Get(t, "/creators/"+user.Username+"/assets")
	assert.Equal(t, 200, status)

	var created []registry.AssetResource
	if err := raw.Extract("assets", &created); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, created, 2)
}

func TestMintAssetRoyaltyBounds(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, raw := user.Post(t, "/assets", url.Values{
		"name":               {"TooMuch"},
		"royalty_percentage": {"101"},
	})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "royalty_invalid", e.Code)

	status, _ = user.Post(t, "/assets", url.Values{
		"name":               {"ZeroRoyalty"},
		"royalty_percentage": {"0"},
	})
	assert.Equal(t, 201, status)

	status, _ = user.Post(t, "/assets", url.Values{
		"name":               {"FullRoyalty"},
		"royalty_percentage": {"100"},
	})
	assert.Equal(t, 201, status)
}

func TestMintAssetRequiresAuthentication(
	t *testing.T,
) {
	r := test.CreateRegistry(t)

	status, raw := r.Post(t, "/assets", url.Values{
		"name":               {"Nope"},
		"royalty_percentage": {"0"},
	})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "username_invalid", e.Code)
}
