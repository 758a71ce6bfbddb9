package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/JuinSoft/Celestium/lib/env"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
)

// Credentials represents the credentials of the currently logged in user.
type Credentials struct {
	Username string `json:"username"`
	Host     string `json:"registry"`
	Password string `json:"password"`
}

const (
	// credentialsKey the context.Context key to store the credentials.
	credentialsKey ContextKey = "cli.credentials"
)

// WithCredentials stores the credentials in the provided context.
func WithCredentials(
	ctx context.Context,
	credentials *Credentials,
) context.Context {
	return context.WithValue(ctx, credentialsKey, credentials)
}

// GetCredentials returns the credentials currently stored in the context.
func GetCredentials(
	ctx context.Context,
) *Credentials {
	return ctx.Value(credentialsKey).(*Credentials)
}

// CredentialsPath returns the credentials path for the current environment.
func CredentialsPath(
	ctx context.Context,
) (*string, error) {
	path, err := homedir.Expand(
		fmt.Sprintf("~/.celestium/credentials-%s.json",
			env.Get(ctx).Environment))
	if err != nil {
		return nil, errors.Trace(err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0777)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &path, nil
}

// CurrentUser retrieves the current user by reading CredentialsPath.
func CurrentUser(
	ctx context.Context,
) (*Credentials, error) {
	path, err := CredentialsPath(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if _, err := os.Stat(*path); os.IsNotExist(err) {
		return nil, nil
	}

	raw, err := ioutil.ReadFile(*path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var c Credentials
	err = json.Unmarshal(raw, &c)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &c, nil
}

// Login logs the user in by storing its credentials in CredentialsPath.
func Login(
	ctx context.Context,
	username string,
	host string,
	password string,
) error {
	creds := &Credentials{
		Username: username,
		Host:     host,
		Password: password,
	}

	path, err := CredentialsPath(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	formatted, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Trace(err)
	}

	err = ioutil.WriteFile(*path, formatted, 0644)
	if err != nil {
		return errors.Trace(err)
	}

	out.Normf("Logged in as: ")
	out.Valuf("%s@%s\n", username, host)

	return nil
}

// Logout logs the user out by deleting the credentials stored in
// CredentialsPath.
func Logout(
	ctx context.Context,
) error {
	path, err := CredentialsPath(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	if _, err := os.Stat(*path); os.IsNotExist(err) {
		return nil
	}

	err = os.Remove(*path)
	if err != nil {
		return errors.Trace(err)
	}

	out.Normf("Logged out.\n")

	return nil
}
