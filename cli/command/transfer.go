package command

import (
	"context"
	"math/big"
	"net/url"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// CmdNmTransfer is the command name.
	CmdNmTransfer cli.CmdName = "transfer"
)

func init() {
	cli.Registrar[CmdNmTransfer] = NewTransfer
}

// Transfer an asset the user owns to a recipient against a payment.
type Transfer struct {
	Asset  string
	To     string
	Amount big.Int
}

// NewTransfer constructs and initializes the command.
func NewTransfer() cli.Command {
	return &Transfer{}
}

// Name returns the command name.
func (c *Transfer) Name() cli.CmdName {
	return CmdNmTransfer
}

// Help prints out the help message for the command.
func (c *Transfer) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium transfer <asset> to <user> for <amount>\n")
	out.Normf("\n")
	out.Normf("  Transfers an asset you own to a recipient. The amount must cover the asset\n")
	out.Normf("  price and is debited from the recipient's balance: the creator receives the\n")
	out.Normf("  royalty and you receive the rest.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  asset\n")
	out.Normf("    The id of the asset to transfer.\n")
	out.Valuf("    asset_1\n")
	out.Normf("\n")
	out.Boldf("  user\n")
	out.Normf("    The recipient of the asset.\n")
	out.Valuf("    ada\n")
	out.Normf("\n")
	out.Boldf("  amount\n")
	out.Normf("    The payment amount, at least the asset price.\n")
	out.Valuf("    1000000000\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("  celestium transfer asset_1 to ada for 1000000000\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Transfer) Parse(
	ctx context.Context,
	args []string,
) error {
	creds := cli.GetCredentials(ctx)
	if creds == nil {
		return errors.Trace(
			errors.Newf("You need to be logged in (try `celestium help login`)."))
	}

	if len(args) == 0 {
		return errors.Trace(errors.Newf("Asset id required."))
	}
	asset, args := args[0], args[1:]
	if !model.AssetIDRegexp.MatchString(asset) {
		return errors.Trace(errors.Newf("Invalid asset id: %s", asset))
	}
	c.Asset = asset

	if len(args) < 2 || args[0] != "to" {
		return errors.Trace(errors.Newf("Recipient required (\"to <user>\")."))
	}
	c.To, args = args[1], args[2:]

	if len(args) < 2 || args[0] != "for" {
		return errors.Trace(errors.Newf("Amount required (\"for <amount>\")."))
	}
	if _, ok := c.Amount.SetString(args[1], 10); !ok {
		return errors.Trace(errors.Newf("Invalid amount: %s", args[1]))
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Transfer) Execute(
	ctx context.Context,
) error {
	reg, err := cli.RegistryFromContextCredentials(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	status, raw, err := reg.Post(ctx,
		"/assets/"+c.Asset+"/transfer",
		url.Values{
			"to":     {c.To},
			"amount": {c.Amount.String()},
		})
	if err != nil {
		return errors.Trace(err)
	}
	if *status != 200 {
		return errors.Trace(extractError(*status, raw))
	}

	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		return errors.Trace(err)
	}

	out.Normf("Transferred: ")
	out.Valuf("%s\n", asset.ID)
	out.Normf("  Owner: ")
	out.Valuf("%s\n", asset.Owner)

	return nil
}
