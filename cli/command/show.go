package command

import (
	"context"
	"net/url"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
	"github.com/JuinSoft/Celestium/registry"
	"github.com/JuinSoft/Celestium/registry/model"
)

const (
	// CmdNmShow is the command name.
	CmdNmShow cli.CmdName = "show"
)

func init() {
	cli.Registrar[CmdNmShow] = NewShow
}

// Show an asset and the operations executed for it.
type Show struct {
	Asset string
}

// NewShow constructs and initializes the command.
func NewShow() cli.Command {
	return &Show{}
}

// Name returns the command name.
func (c *Show) Name() cli.CmdName {
	return CmdNmShow
}

// Help prints out the help message for the command.
func (c *Show) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium show <asset>\n")
	out.Normf("\n")
	out.Normf("  Shows an asset along with the value-transfer legs executed for it.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  asset\n")
	out.Normf("    The id of the asset to show.\n")
	out.Valuf("    asset_1\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("  celestium show asset_1\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Show) Parse(
	ctx context.Context,
	args []string,
) error {
	if len(args) == 0 {
		return errors.Trace(errors.Newf("Asset id required."))
	}
	if !model.AssetIDRegexp.MatchString(args[0]) {
		return errors.Trace(errors.Newf("Invalid asset id: %s", args[0]))
	}
	c.Asset = args[0]

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Show) Execute(
	ctx context.Context,
) error {
	reg, err := cli.RegistryFromContextCredentials(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	status, raw, err := reg.Get(ctx, "/assets/"+c.Asset, url.Values{})
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

	out.Boldf("%s\n", asset.ID)
	out.Normf("  Name              : ")
	out.Valuf("%s\n", asset.Name)
	out.Normf("  Description       : ")
	out.Valuf("%s\n", asset.Description)
	out.Normf("  Image URL         : ")
	out.Valuf("%s\n", asset.ImageURL)
	out.Normf("  Creator           : ")
	out.Valuf("%s\n", asset.Creator)
	out.Normf("  Owner             : ")
	out.Valuf("%s\n", asset.Owner)
	out.Normf("  Royalty percentage: ")
	out.Valuf("%d\n", asset.RoyaltyPercentage)
	out.Normf("  Price             : ")
	out.Valuf("%s\n", asset.Price.String())

	status, raw, err = reg.Get(ctx,
		"/assets/"+c.Asset+"/operations", url.Values{})
	if err != nil {
		return errors.Trace(err)
	}
	if *status != 200 {
		return errors.Trace(extractError(*status, raw))
	}

	var operations []registry.OperationResource
	if err := raw.Extract("operations", &operations); err != nil {
		return errors.Trace(err)
	}

	out.Normf("Operations:\n")
	for _, o := range operations {
		source := "-"
		if o.Source != nil {
			source = *o.Source
		}
		out.Normf("  %s ", o.Kind)
		out.Valuf("%s", source)
		out.Normf(" -> ")
		out.Valuf("%s", o.Destination)
		out.Normf(" amount=")
		out.Valuf("%s\n", o.Amount.String())
	}
	if len(operations) == 0 {
		out.Normf("  No operations.\n")
	}

	return nil
}
