package command

import (
	"context"
	"net/url"
	"strconv"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/out"
	"github.com/JuinSoft/Celestium/registry"
)

const (
	// CmdNmMint is the command name.
	CmdNmMint cli.CmdName = "mint"
)

func init() {
	cli.Registrar[CmdNmMint] = NewMint
}

// Mint creates a new asset with the authenticated user as creator and initial
// owner.
type Mint struct {
	AssetName         string
	Description       string
	ImageURL          string
	RoyaltyPercentage int8
}

// NewMint constructs and initializes the command.
func NewMint() cli.Command {
	return &Mint{}
}

// Name returns the command name.
func (c *Mint) Name() cli.CmdName {
	return CmdNmMint
}

// Help prints out the help message for the command.
func (c *Mint) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium mint <name> <royalty_percentage> [<description> [<image_url>]]\n")
	out.Normf("\n")
	out.Normf("  Minting an asset registers it under a new sequential id with you as creator\n")
	out.Normf("  and initial owner. The royalty percentage is paid to you on every subsequent\n")
	out.Normf("  transfer of the asset.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  name\n")
	out.Normf("    The display name of the asset.\n")
	out.Valuf("    Nebula\n")
	out.Normf("\n")
	out.Boldf("  royalty_percentage\n")
	out.Normf("    The royalty percentage, an integer between 0 and 100.\n")
	out.Valuf("    10\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("  celestium mint Nebula 10 \"A swirl of gas.\"\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Mint) Parse(
	ctx context.Context,
	args []string,
) error {
	creds := cli.GetCredentials(ctx)
	if creds == nil {
		return errors.Trace(
			errors.Newf("You need to be logged in (try `celestium help login`)."))
	}

	if len(args) == 0 {
		return errors.Trace(errors.Newf("Asset name required."))
	}
	c.AssetName, args = args[0], args[1:]

	if len(args) == 0 {
		return errors.Trace(errors.Newf("Royalty percentage required."))
	}
	royalty, err := strconv.ParseInt(args[0], 10, 8)
	if err != nil || royalty < 0 || royalty > 100 {
		return errors.Trace(errors.Newf(
			"Invalid royalty percentage: %s (must be an integer between 0 "+
				"and 100).", args[0]))
	}
	c.RoyaltyPercentage = int8(royalty)
	args = args[1:]

	if len(args) > 0 {
		c.Description, args = args[0], args[1:]
	}
	if len(args) > 0 {
		c.ImageURL = args[0]
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Mint) Execute(
	ctx context.Context,
) error {
	reg, err := cli.RegistryFromContextCredentials(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	status, raw, err := reg.Post(ctx, "/assets", url.Values{
		"name":               {c.AssetName},
		"description":        {c.Description},
		"image_url":          {c.ImageURL},
		"royalty_percentage": {strconv.FormatInt(int64(c.RoyaltyPercentage), 10)},
	})
	if err != nil {
		return errors.Trace(err)
	}
	if *status != 201 {
		return errors.Trace(extractError(*status, raw))
	}

	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		return errors.Trace(err)
	}

	out.Normf("Minted: ")
	out.Valuf("%s\n", asset.ID)
	out.Normf("  Name              : ")
	out.Valuf("%s\n", asset.Name)
	out.Normf("  Creator           : ")
	out.Valuf("%s\n", asset.Creator)
	out.Normf("  Royalty percentage: ")
	out.Valuf("%d\n", asset.RoyaltyPercentage)
	out.Normf("  Price             : ")
	out.Valuf("%s\n", asset.Price.String())

	return nil
}
