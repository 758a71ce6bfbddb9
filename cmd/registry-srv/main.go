package main

import (
	"flag"
	"log"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/registry/app"
)

var envFlag string
var dsnFlag string
var hstFlag string
var prtFlag string

func init() {
	flag.StringVar(&envFlag, "env",
		"qa", "The environment to run in (qa, production), default: qa")
	flag.StringVar(&dsnFlag, "db_dsn",
		"", "The DSN of the database to use, default: sqlite3://~/.celestium/registry-$env.db")
	flag.StringVar(&hstFlag, "host",
		"", "The externally accessible host name of this registry")
	flag.StringVar(&prtFlag, "port",
		"", "The port to listen on, default: 2406")

	if fl := log.Flags(); fl&log.Ltime != 0 {
		log.SetFlags(fl | log.Lmicroseconds)
	}
}

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	ctx, err := app.BackgroundContextFromFlags(
		envFlag, dsnFlag, hstFlag, prtFlag,
	)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	mux, err := app.Build(ctx)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	if err := app.Serve(ctx, mux); err != nil {
		log.Fatal(errors.Details(err))
	}
}
