package functional

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/test"
)

func TestFundBalance(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, raw := user.Post(t,
		"/balances/"+user.Username+"/fund",
		url.Values{
			"amount": {"100"},
		})
	assert.Equal(t, 201, status)

	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, user.Username, balance.Holder)
	assert.Equal(t, "100", balance.Value.String())

	// Funding accumulates.
	status, raw = user.Post(t,
		"/balances/"+user.Username+"/fund",
		url.Values{
			"amount": {"50"},
		})
	assert.Equal(t, 201, status)

	if err := raw.Extract("balance", &balance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "150", balance.Value.String())
}

func TestFundBalanceNotAuthorized(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)
	other := r.CreateUser(t)

	status, raw := user.Post(t,
		"/balances/"+other.Username+"/fund",
		url.Values{
			"amount": {"100"},
		})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "funding_not_authorized", e.Code)
}

func TestFundBalanceInvalidAmount(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	user := r.CreateUser(t)

	status, raw := user.Post(t,
		"/balances/"+user.Username+"/fund",
		url.Values{
			"amount": {"-1"},
		})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "amount_invalid", e.Code)
}

func TestRetrieveBalanceUnknownHolder(
	t *testing.T,
) {
	r := test.CreateRegistry(t)

	status, raw := r.Get(t, "/balances/nobody")
	assert.Equal(t, 200, status)

	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "nobody", balance.Holder)
	assert.Equal(t, "0", balance.Value.String())
}
