package client

import (
	"context"
	"net/http"

	"github.com/JuinSoft/Celestium/lib/env"
)

var defaultClient = (*http.Client)(nil)

// Default returns the default HTTP client to use (to avoid re-instantiating
// one for each request).
func Default(
	ctx context.Context,
) *http.Client {
	if defaultClient == nil {
		switch env.Get(ctx).Environment {
		case env.Production:
			defaultClient = &http.Client{}
		case env.QA:
			defaultClient = &http.Client{}
		}
	}
	return defaultClient
}
