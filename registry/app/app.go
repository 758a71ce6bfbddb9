package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"goji.io"

	"github.com/facebookgo/grace/gracehttp"
	"github.com/JuinSoft/Celestium/lib/db"
	"github.com/JuinSoft/Celestium/lib/env"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/logging"
	"github.com/JuinSoft/Celestium/lib/recoverer"
	"github.com/JuinSoft/Celestium/lib/requestlogger"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/lib/authentication"

	// force initialization of schemas
	_ "github.com/JuinSoft/Celestium/registry/model/schemas"
)

// BackgroundContextFromFlags initializes a background context fully loaded
// with everything that could be extracted from the flags.
func BackgroundContextFromFlags(
	envFlag string,
	dsnFlag string,
	hstFlag string,
	prtFlag string,
) (context.Context, error) {
	ctx := context.Background()

	registryEnv := env.Env{
		Environment: env.QA,
		Config:      map[env.ConfigKey]string{},
	}
	if envFlag == "production" || envFlag == "prod" {
		registryEnv.Environment = env.Production
	}
	registryEnv.Config[registry.EnvCfgHost] = hstFlag

	port := registry.DefaultPort[registryEnv.Environment]
	if prtFlag != "" {
		port = prtFlag
	}
	registryEnv.Config[registry.EnvCfgPort] = port

	ctx = env.With(ctx, &registryEnv)

	registryDB, err := db.NewDBForDSN(ctx,
		dsnFlag,
		fmt.Sprintf("sqlite3://~/.celestium/registry-%s.db",
			env.Get(ctx).Environment))
	if err != nil {
		return nil, errors.Trace(err)
	}
	err = db.CreateDBTables(ctx, "registry", registryDB)
	if err != nil {
		return nil, errors.Trace(err)
	}
	ctx = db.WithDB(ctx, "registry", registryDB)

	return ctx, nil
}

// Build initializes the app and its web stack.
func Build(
	ctx context.Context,
) (*goji.Mux, error) {
	mux := goji.NewMux()
	mux.Use(requestlogger.Middleware)
	mux.Use(recoverer.Middleware)
	mux.Use(db.Middleware(db.GetDBMap(ctx)))
	mux.Use(env.Middleware(env.Get(ctx)))
	mux.Use(authentication.Middleware)

	logging.Logf(ctx, "Initializing: environment=%s host=%s port=%s",
		env.Get(ctx).Environment, registry.GetHost(ctx), registry.GetPort(ctx))

	(&Controller{}).Bind(mux)

	return mux, nil
}

// Serve the goji mux.
func Serve(
	ctx context.Context,
	mux *goji.Mux,
) error {

	s := &http.Server{
		Addr:         fmt.Sprintf(":%s", registry.GetPort(ctx)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		Handler:      mux,
	}

	logging.Logf(ctx, "Listening: port=%s", registry.GetPort(ctx))

	err := gracehttp.Serve(s)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}
