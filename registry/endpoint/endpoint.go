package endpoint

import (
	"context"
	"net/http"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/respond"
	"github.com/JuinSoft/Celestium/lib/svc"
)

// EndPtName represents an endpoint name.
type EndPtName string

// registrar is used to register endpoints within the module.
var registrar = map[EndPtName](func(*http.Request) (Endpoint, error)){}

// Endpoint is the interface that endpoints need to implement.
type Endpoint interface {
	Validate(
		r *http.Request,
	) error

	Execute(
		ctx context.Context,
	) (*int, *svc.Resp, error)
}

// HandlerFor returns a handler for the given endpoint name.
func HandlerFor(
	name EndPtName,
) func(
	http.ResponseWriter,
	*http.Request,
) {
	return func(
		w http.ResponseWriter,
		r *http.Request,
	) {
		ctx := r.Context()

		endpt, err := registrar[name](r)
		if err != nil {
			respond.Error(ctx, w, errors.Trace(err))
			return
		}

		err = endpt.Validate(r)
		if err != nil {
			respond.Error(ctx, w, errors.Trace(err))
			return
		}

		status, resp, err := endpt.Execute(r.Context())
		if err != nil {
			respond.Error(ctx, w, errors.Trace(err))
			return
		}
		respond.Respond(ctx, w, *status, nil, *resp)
	}
}
