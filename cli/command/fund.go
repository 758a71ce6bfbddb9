package command

import (
	"context"
	"math/big"
	"net/url"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
	"github.com/JuinSoft/Celestium/registry"
)

const (
	// CmdNmFund is the command name.
	CmdNmFund cli.CmdName = "fund"
)

func init() {
	cli.Registrar[CmdNmFund] = NewFund
}

// Fund credits the user's balance.
type Fund struct {
	Amount big.Int
}

// NewFund constructs and initializes the command.
func NewFund() cli.Command {
	return &Fund{}
}

// Name returns the command name.
func (c *Fund) Name() cli.CmdName {
	return CmdNmFund
}

// Help prints out the help message for the command.
func (c *Fund) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium fund <amount>\n")
	out.Normf("\n")
	out.Normf("  Credits your balance with the specified amount. Balances are used to pay\n")
	out.Normf("  for asset transfers.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  amount\n")
	out.Normf("    The amount to credit, a non-negative integer.\n")
	out.Valuf("    1000000000\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("  celestium fund 1000000000\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Fund) Parse(
	ctx context.Context,
	args []string,
) error {
	creds := cli.GetCredentials(ctx)
	if creds == nil {
		return errors.Trace(
			errors.Newf("You need to be logged in (try `celestium help login`)."))
	}

	if len(args) == 0 {
		return errors.Trace(errors.Newf("Amount required."))
	}
	if _, ok := c.Amount.SetString(args[0], 10); !ok {
		return errors.Trace(errors.Newf("Invalid amount: %s", args[0]))
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Fund) Execute(
	ctx context.Context,
) error {
	reg, err := cli.RegistryFromContextCredentials(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	status, raw, err := reg.Post(ctx,
		"/balances/"+reg.Credentials.Username+"/fund",
		url.Values{
			"amount": {c.Amount.String()},
		})
	if err != nil {
		return errors.Trace(err)
	}
	if *status != 201 {
		return errors.Trace(extractError(*status, raw))
	}

	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		return errors.Trace(err)
	}

	out.Normf("Funded: ")
	out.Valuf("%s\n", balance.Holder)
	out.Normf("  Balance: ")
	out.Valuf("%s\n", balance.Value.String())

	return nil
}
