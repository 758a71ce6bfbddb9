package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JuinSoft/Celestium/lib/client"
	"github.com/JuinSoft/Celestium/lib/env"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/svc"
)

// Registry exposes an interface to perform queries on a remote registry.
type Registry struct {
	Host        string
	Credentials *Credentials
}

// RegistryFromContextCredentials returns a registry object from the
// credentials stored in the current context.
func RegistryFromContextCredentials(
	ctx context.Context,
) (*Registry, error) {
	c := GetCredentials(ctx)
	if c == nil {
		return nil, errors.Trace(
			errors.Newf("Not logged in (see `celestium login`)."))
	}
	return &Registry{
		Host:        c.Host,
		Credentials: c,
	}, nil
}

// PublicRegistry returns a registry object for unauthenticated queries on the
// specified host.
func PublicRegistry(
	host string,
) *Registry {
	return &Registry{
		Host: host,
	}
}

// FullURL constructs the URL for the given path and query on the registry.
// Registries are served over HTTPS in production and HTTP in QA.
func (m *Registry) FullURL(
	ctx context.Context,
	path string,
	query url.Values,
) *url.URL {
	scheme := "https"
	if env.Get(ctx).Environment == env.QA {
		scheme = "http"
	}
	u, _ := url.Parse(fmt.Sprintf("%s://%s%s?%s",
		scheme, m.Host, path, query.Encode()))
	return u
}

// Post performs a POST request to the registry.
func (m *Registry) Post(
	ctx context.Context,
	path string,
	params url.Values,
) (*int, *svc.Resp, error) {
	req, err := http.NewRequest("POST",
		m.FullURL(ctx, path, url.Values{}).String(),
		strings.NewReader(params.Encode()))
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if m.Credentials != nil {
		req.SetBasicAuth(m.Credentials.Username, m.Credentials.Password)
	}

	r, err := client.Default(ctx).Do(req)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer r.Body.Close()

	var raw svc.Resp
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, nil, errors.Trace(err)
	}

	return &r.StatusCode, &raw, nil
}

// Get performs a GET request to the registry.
func (m *Registry) Get(
	ctx context.Context,
	path string,
	query url.Values,
) (*int, *svc.Resp, error) {
	req, err := http.NewRequest("GET",
		m.FullURL(ctx, path, query).String(), nil)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	if m.Credentials != nil {
		req.SetBasicAuth(m.Credentials.Username, m.Credentials.Password)
	}

	r, err := client.Default(ctx).Do(req)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer r.Body.Close()

	var raw svc.Resp
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, nil, errors.Trace(err)
	}

	return &r.StatusCode, &raw, nil
}
