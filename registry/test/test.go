package test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	goji "goji.io"

	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/env"
	"github.com/JuinSoft/Celestium/lib/recoverer"
	"github.com/JuinSoft/Celestium/lib/requestlogger"
	"github.com/JuinSoft/Celestium/lib/svc"
	"github.com/JuinSoft/Celestium/registry/app"
	"github.com/JuinSoft/Celestium/registry/lib/authentication"
	"github.com/JuinSoft/Celestium/registry/model"

	// force initialization of schemas
	_ "github.com/JuinSoft/Celestium/registry/model/schemas"
)

// Registry represents a test registry backed by an in-memory DB.
type Registry struct {
	Server *httptest.Server
	Env    *env.Env
	Ctx    context.Context
}

// CreateRegistry creates a new test registry with an in-memory DB and a full
// middleware stack.
func CreateRegistry(
	t *testing.T,
) *Registry {
	ctx := context.Background()

	registryEnv := env.Env{
		Environment: env.QA,
		Config:      map[env.ConfigKey]string{},
	}
	ctx = env.With(ctx, &registryEnv)

	registryDB, err := db.NewSqlite3DBInMemory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	err = db.CreateDBTables(ctx, "registry", registryDB)
	if err != nil {
		t.Fatal(err)
	}
	ctx = db.WithDB(ctx, "registry", registryDB)

	mux := goji.NewMux()
	mux.Use(requestlogger.Middleware)
	mux.Use(recoverer.Middleware)
	mux.Use(db.Middleware(db.GetDBMap(ctx)))
	mux.Use(env.Middleware(env.Get(ctx)))
	mux.Use(authentication.Middleware)

	(&app.Controller{}).Bind(mux)

	r := Registry{
		Server: httptest.NewServer(mux),
		Env:    &registryEnv,
		Ctx:    ctx,
	}

	return &r
}

// RegistryUser represents a user of a test registry.
type RegistryUser struct {
	Registry *Registry
	Username string
	Password string
}

// CreateUser creates a new user on the test registry with a random username.
func (r *Registry) CreateUser(
	t *testing.T,
) *RegistryUser {
	username := fmt.Sprintf("u%012d", rand.Int63n(1000000000000))
	password := fmt.Sprintf("p%012d", rand.Int63n(1000000000000))

	_, err := model.CreateUser(r.Ctx, username, password)
	if err != nil {
		t.Fatal(err)
	}

	return &RegistryUser{
		Registry: r,
		Username: username,
		Password: password,
	}
}

func execute(
	t *testing.T,
	r *http.Request,
) (int, svc.Resp) {
	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw := svc.Resp{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatal(err)
	}

	return resp.StatusCode, raw
}

// Post executes a POST request on the test registry as the user.
func (u *RegistryUser) Post(
	t *testing.T,
	path string,
	values url.Values,
) (int, svc.Resp) {
	req, err := http.NewRequest("POST",
		u.Registry.Server.URL+path,
		strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(u.Username, u.Password)

	return execute(t, req)
}

// Get executes a GET request on the test registry as the user.
func (u *RegistryUser) Get(
	t *testing.T,
	path string,
) (int, svc.Resp) {
	req, err := http.NewRequest("GET", u.Registry.Server.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.SetBasicAuth(u.Username, u.Password)

	return execute(t, req)
}

// Post executes an unauthenticated POST request on the test registry.
func (r *Registry) Post(
	t *testing.T,
	path string,
	values url.Values,
) (int, svc.Resp) {
	req, err := http.NewRequest("POST",
		r.Server.URL+path,
		strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return execute(t, req)
}

// Get executes an unauthenticated GET request on the test registry.
func (r *Registry) Get(
	t *testing.T,
	path string,
) (int, svc.Resp) {
	req, err := http.NewRequest("GET", r.Server.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}

	return execute(t, req)
}
