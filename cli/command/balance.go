package command

import (
	"context"
	"net/url"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
	"github.com/JuinSoft/Celestium/registry"
)

const (
	// CmdNmBalance is the command name.
	CmdNmBalance cli.CmdName = "balance"
)

func init() {
	cli.Registrar[CmdNmBalance] = NewBalance
}

// Balance shows the balance of a user (the authenticated user by default).
type Balance struct {
	User string
}

// NewBalance constructs and initializes the command.
func NewBalance() cli.Command {
	return &Balance{}
}

// Name returns the command name.
func (c *Balance) Name() cli.CmdName {
	return CmdNmBalance
}

// Help prints out the help message for the command.
func (c *Balance) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium balance [<user>]\n")
	out.Normf("\n")
	out.Normf("  Shows the balance of a user, yours by default. Users that never held value\n")
	out.Normf("  have a 0 balance.\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("  celestium balance\n")
	out.Valuf("  celestium balance ada\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Balance) Parse(
	ctx context.Context,
	args []string,
) error {
	if len(args) > 0 {
		c.User = args[0]
	} else {
		creds := cli.GetCredentials(ctx)
		if creds == nil {
			return errors.Trace(errors.Newf("User required when not logged in."))
		}
		c.User = creds.Username
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Balance) Execute(
	ctx context.Context,
) error {
	reg, err := cli.RegistryFromContextCredentials(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	status, raw, err := reg.Get(ctx, "/balances/"+c.User, url.Values{})
	if err != nil {
		return errors.Trace(err)
	}
	if *status != 200 {
		return errors.Trace(extractError(*status, raw))
	}

	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		return errors.Trace(err)
	}

	out.Boldf("%s\n", balance.Holder)
	out.Normf("  Balance: ")
	out.Valuf("%s\n", balance.Value.String())

	return nil
}
