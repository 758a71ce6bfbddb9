package endpoint

import (
	"context"
	"net/http"

	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/format"
	"github.com/JuinSoft/Celestium/lib/ptr"
	"github.com/JuinSoft/Celestium/lib/svc"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/lib/authentication"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// EndPtInitialize initializes the registry.
	EndPtInitialize EndPtName = "Initialize"
)

func init() {
	registrar[EndPtInitialize] = NewInitialize
}

// Initialize records the authenticated principal as the registry admin. It
// can succeed at most once; the admin is recorded but no other operation is
// gated on it.
type Initialize struct {
	Admin string
}

// NewInitialize constructs and initializes the endpoint.
func NewInitialize(
	r *http.Request,
) (Endpoint, error) {
	return &Initialize{}, nil
}

// Validate validates the input parameters.
func (e *Initialize) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Admin = authentication.Get(ctx).User.Username

	return nil
}

// Execute executes the endpoint.
func (e *Initialize) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "registry")
	defer db.LoggedRollback(ctx, "registry")

	reg, err := model.LoadOrCreateRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	if reg.Admin != nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "already_initialized",
			"The registry was already initialized with admin: %s.",
			*reg.Admin,
		))
	}

	reg.Admin = ptr.Str(e.Admin)
	if err := reg.Save(ctx); err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx, "registry")

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"registry": format.JSONPtr(registry.NewRegistryResource(ctx, reg)),
	}, nil
}
