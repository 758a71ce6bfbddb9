package command

import (
	"context"
	"net/url"
	"strconv"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/format"
	"github.com/JuinSoft/Celestium/lib/out"
	"github.com/JuinSoft/Celestium/registry"
)

const (
	// CmdNmList is the command name.
	CmdNmList cli.CmdName = "list"
)

func init() {
	cli.Registrar[CmdNmList] = NewList
}

// ListQuery represents the pagination parameters of a global asset listing.
type ListQuery struct {
	Limit  int64 `form:"limit"`
	Offset int64 `form:"offset"`
}

// List assets, either globally, by owner or by creator.
type List struct {
	Object string
	User   string
	Query  ListQuery
}

// NewList constructs and initializes the command.
func NewList() cli.Command {
	return &List{}
}

// Name returns the command name.
func (c *List) Name() cli.CmdName {
	return CmdNmList
}

// Help prints out the help message for the command.
func (c *List) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium list assets|owned|created [<user>]\n")
	out.Normf("\n")
	out.Normf("  Lists assets. ")
	out.Boldf("assets")
	out.Normf(" lists all minted assets; ")
	out.Boldf("owned")
	out.Normf(" and ")
	out.Boldf("created")
	out.Normf(" list the assets\n")
	out.Normf("  owned or created by a user (you by default).\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("  celestium list assets\n")
	out.Valuf("  celestium list assets 10 20\n")
	out.Valuf("  celestium list owned ada\n")
	out.Valuf("  celestium list created\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *List) Parse(
	ctx context.Context,
	args []string,
) error {
	if len(args) == 0 {
		return errors.Trace(
			errors.Newf("Object required (assets, owned or created)."))
	}
	c.Object, args = args[0], args[1:]

	switch c.Object {
	case "assets":
		// Optional limit and offset.
		if len(args) > 0 {
			l, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || l < 0 {
				return errors.Trace(errors.Newf("Invalid limit: %s", args[0]))
			}
			c.Query.Limit = l
			args = args[1:]
		}
		if len(args) > 0 {
			o, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || o < 0 {
				return errors.Trace(errors.Newf("Invalid offset: %s", args[0]))
			}
			c.Query.Offset = o
		}
	case "owned", "created":
		if len(args) > 0 {
			c.User = args[0]
		} else {
			creds := cli.GetCredentials(ctx)
			if creds == nil {
				return errors.Trace(errors.Newf(
					"User required when not logged in."))
			}
			c.User = creds.Username
		}
	default:
		return errors.Trace(errors.Newf(
			"Invalid object: %s (expected assets, owned or created).",
			c.Object))
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *List) Execute(
	ctx context.Context,
) error {
	reg, err := cli.RegistryFromContextCredentials(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	path := "/assets"
	query := format.FormValues(c.Query)
	switch c.Object {
	case "owned":
		path = "/owners/" + c.User + "/assets"
		query = url.Values{}
	case "created":
		path = "/creators/" + c.User + "/assets"
		query = url.Values{}
	}

	status, raw, err := reg.Get(ctx, path, query)
	if err != nil {
		return errors.Trace(err)
	}
	if *status != 200 {
		return errors.Trace(extractError(*status, raw))
	}

	var assets []registry.AssetResource
	if err := raw.Extract("assets", &assets); err != nil {
		return errors.Trace(err)
	}

	for _, a := range assets {
		out.Boldf("%s", a.ID)
		out.Normf(" %s", a.Name)
		out.Normf(" owner=")
		out.Valuf("%s", a.Owner)
		out.Normf(" creator=")
		out.Valuf("%s", a.Creator)
		out.Normf(" price=")
		out.Valuf("%s", a.Price.String())
		out.Normf(" royalty=")
		out.Valuf("%d%%\n", a.RoyaltyPercentage)
	}
	if len(assets) == 0 {
		out.Normf("No assets.\n")
	}

	return nil
}
