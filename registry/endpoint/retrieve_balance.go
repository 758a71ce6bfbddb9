package endpoint

import (
	"context"
	"net/http"
	"time"

	"goji.io/pat"

	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/format"
	"github.com/JuinSoft/Celestium/lib/ptr"
	"github.com/JuinSoft/Celestium/lib/svc"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// EndPtRetrieveBalance retrieves the balance of a principal.
	EndPtRetrieveBalance EndPtName = "RetrieveBalance"
)

func init() {
	registrar[EndPtRetrieveBalance] = NewRetrieveBalance
}

// RetrieveBalance retrieves the balance of a principal. A principal that
// never held value has a 0 balance; this endpoint never 404s.
type RetrieveBalance struct {
	Holder string
}

// NewRetrieveBalance constructs and initializes the endpoint.
func NewRetrieveBalance(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveBalance{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveBalance) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	holder, err := ValidatePrincipal(ctx, pat.Param(r, "holder"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Holder = *holder

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveBalance) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	balance, err := model.LoadBalanceByHolder(ctx, e.Holder)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if balance == nil {
		// Absent rows read as 0 without creating one.
		balance = &model.Balance{
			Created: time.Now().UTC(),
			Holder:  e.Holder,
			Value:   model.Amount{},
		}
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusOK), &svc.Resp{
		"balance": format.JSONPtr(registry.NewBalanceResource(ctx, balance)),
	}, nil
}
