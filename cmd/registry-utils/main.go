package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
	"github.com/JuinSoft/Celestium/registry/app"
	"github.com/JuinSoft/Celestium/registry/model"
)

var fctFlag string

var envFlag string
var dsnFlag string

var usrFlag string
var pasFlag string

func init() {
	flag.StringVar(&fctFlag, "function",
		"add_user", "The function to execute")

	flag.StringVar(&envFlag, "env",
		"qa", "The environment to run in (qa, production), default: qa")
	flag.StringVar(&dsnFlag, "db_dsn",
		"", "The DSN of the database to use, default: sqlite3://~/.celestium/registry-$env.db")

	flag.StringVar(&usrFlag, "username",
		"", "The username of the user to upsert")
	flag.StringVar(&pasFlag, "password",
		"", "The password of the user to upsert")

	if fl := log.Flags(); fl&log.Ltime != 0 {
		log.SetFlags(fl | log.Lmicroseconds)
	}
}

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	ctx, err := app.BackgroundContextFromFlags(
		envFlag, dsnFlag, "", "",
	)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	validFunctions := []string{"add_user"}
	switch fctFlag {
	case "add_user":
		addUser(ctx, usrFlag, pasFlag)
	default:
		log.Fatalf("Invalid function `%s`, valid functions are: %s",
			fctFlag, strings.Join(validFunctions, ", "))
	}
}

func addUser(
	ctx context.Context,
	username string,
	password string,
) {
	if !model.UsernameRegexp.MatchString(username) {
		log.Fatalf("Invalid username: %s", username)
	}
	if password == "" {
		log.Fatal("Password required")
	}

	user, err := model.LoadUserByUsername(ctx, username)
	if err != nil {
		log.Fatal(errors.Details(err))
	}

	if user != nil {
		out.Normf("Updating user: ")
		out.Valuf("%s\n", username)
		err := user.UpdatePassword(ctx, password)
		if err != nil {
			log.Fatal(errors.Details(err))
		}
		err = user.Save(ctx)
		if err != nil {
			log.Fatal(errors.Details(err))
		}
	} else {
		out.Normf("Creating user: ")
		out.Valuf("%s\n", username)
		_, err := model.CreateUser(ctx, username, password)
		if err != nil {
			log.Fatal(errors.Details(err))
		}
	}
}
