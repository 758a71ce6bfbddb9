package command

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/env"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
)

const (
	// CmdNmLogin is the command name.
	CmdNmLogin cli.CmdName = "login"
)

func init() {
	cli.Registrar[CmdNmLogin] = NewLogin
}

// Login stores the credentials used to authenticate against a registry.
type Login struct {
}

// NewLogin constructs and initializes the command.
func NewLogin() cli.Command {
	return &Login{}
}

// Name returns the command name.
func (c *Login) Name() cli.CmdName {
	return CmdNmLogin
}

// Help prints out the help message for the command.
func (c *Login) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium login\n")
	out.Normf("\n")
	out.Normf("  Logging in will store your credentials locally under:\n")
	out.Valuf("  ~/.celestium/credentials-" + string(env.Get(ctx).Environment) + ".json\n")
	out.Normf("\n")
	out.Normf("  Credentials are composed of your username, the host of the registry you use\n")
	out.Normf("  and your password. Users are created by the operator of the registry with\n")
	out.Normf("  the ")
	out.Boldf("registry-utils")
	out.Normf(" command.\n\n")
}

// Parse parses the arguments passed to the command.
func (c *Login) Parse(
	ctx context.Context,
	args []string,
) error {
	return nil
}

// Execute the command or return a human-friendly error.
func (c *Login) Execute(
	ctx context.Context,
) error {
	reader := bufio.NewReader(os.Stdin)

	out.Normf("    Username []: ")
	username, _ := reader.ReadString('\n')

	out.Normf("    Registry host []: ")
	host, _ := reader.ReadString('\n')

	out.Normf("    Password []: ")
	password, _ := reader.ReadString('\n')

	out.Normf("Is the information correct? [Y/n]: ")
	confirmation, _ := reader.ReadString('\n')
	confirmation = strings.TrimSpace(confirmation)
	if confirmation != "" && confirmation != "Y" {
		return errors.Trace(errors.Newf("Login aborted by user."))
	}

	err := cli.Login(ctx,
		strings.TrimSpace(username),
		strings.TrimSpace(host),
		strings.TrimSpace(password))
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}
