package functional

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/test"
)

func TestInitialize(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, raw := user.Post(t, "/initialize", url.Values{})

	assert.Equal(t, 201, status)

	var reg registry.RegistryResource
	if err := raw.Extract("registry", &reg); err != nil {
		t.Fatal(err)
	}

	if assert.NotNil(t, reg.Admin) {
		assert.Equal(t, user.Username, *reg.Admin)
	}
	assert.Equal(t, int64(0), reg.Counter)
}

func TestInitializeTwiceFails(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)
	other := r.CreateUser(t)

	status, _ := user.Post(t, "/initialize", url.Values{})
	assert.Equal(t, 201, status)

	status, raw := other.Post(t, "/initialize", url.Values{})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "already_initialized", e.Code)
}

func TestInitializeIsNotRequiredToMint(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, _ := user.Post(t, "/assets", url.Values{
		"name":               {"First"},
		"royalty_percentage": {"5"},
	})

	assert.Equal(t, 201, status)
}
