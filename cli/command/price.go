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
	// CmdNmPrice is the command name.
	CmdNmPrice cli.CmdName = "price"
)

func init() {
	cli.Registrar[CmdNmPrice] = NewPrice
}

// Price sets the price of an asset the user owns.
type Price struct {
	Asset string
	Price big.Int
}

// NewPrice constructs and initializes the command.
func NewPrice() cli.Command {
	return &Price{}
}

// Name returns the command name.
func (c *Price) Name() cli.CmdName {
	return CmdNmPrice
}

// Help prints out the help message for the command.
func (c *Price) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium price <asset> <price>\n")
	out.Normf("\n")
	out.Normf("  Sets the price of an asset you own. The price applies to the next transfer\n")
	out.Normf("  of the asset.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  asset\n")
	out.Normf("    The id of the asset to price.\n")
	out.Valuf("    asset_1\n")
	out.Normf("\n")
	out.Boldf("  price\n")
	out.Normf("    The new price of the asset.\n")
	out.Valuf("    500000000\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("  celestium price asset_1 500000000\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Price) Parse(
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

	if len(args) == 0 {
		return errors.Trace(errors.Newf("Price required."))
	}
	if _, ok := c.Price.SetString(args[0], 10); !ok {
		return errors.Trace(errors.Newf("Invalid price: %s", args[0]))
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Price) Execute(
	ctx context.Context,
) error {
	reg, err := cli.RegistryFromContextCredentials(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	status, raw, err := reg.Post(ctx,
		"/assets/"+c.Asset+"/price",
		url.Values{
			"price": {c.Price.String()},
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

	out.Normf("Priced: ")
	out.Valuf("%s\n", asset.ID)
	out.Normf("  Price: ")
	out.Valuf("%s\n", asset.Price.String())

	return nil
}
