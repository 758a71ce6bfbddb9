package command

import (
	"context"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/out"
)

const (
	// CmdNmHelp is the command name.
	CmdNmHelp cli.CmdName = "help"
)

func init() {
	cli.Registrar[CmdNmHelp] = NewHelp
}

// Help shows the help message for the cli or one of its commands.
type Help struct {
	Command cli.Command
}

// NewHelp constructs and initializes the command.
func NewHelp() cli.Command {
	return &Help{}
}

// Name returns the command name.
func (c *Help) Name() cli.CmdName {
	return CmdNmHelp
}

// Help prints out the help message for the command.
func (c *Help) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("celestium <command> [<args> ...]\n")
	out.Normf("\n")
	out.Normf("  Registry of uniquely identified digital assets with royalty-aware transfers.\n")
	out.Normf("\n")
	out.Normf("Commands:\n")

	out.Boldf("  help <command>\n")
	out.Normf("    Show help for a command.\n")
	out.Valuf("    celestium help mint\n")
	out.Normf("\n")

	out.Boldf("  login\n")
	out.Normf("    Log into a registry.\n")
	out.Valuf("    celestium login\n")
	out.Normf("\n")

	out.Boldf("  logout\n")
	out.Normf("    Log out of the current registry.\n")
	out.Valuf("    celestium logout\n")
	out.Normf("\n")

	out.Boldf("  mint <name> <royalty_percentage>\n")
	out.Normf("    Mint a new asset.\n")
	out.Valuf("    celestium mint Nebula 10\n")
	out.Normf("\n")

	out.Boldf("  transfer <asset> to <user> for <amount>\n")
	out.Normf("    Transfer an asset you own against a payment.\n")
	out.Valuf("    celestium transfer asset_1 to ada for 1000000000\n")
	out.Normf("\n")

	out.Boldf("  price <asset> <price>\n")
	out.Normf("    Set the price of an asset you own.\n")
	out.Valuf("    celestium price asset_1 500000000\n")
	out.Normf("\n")

	out.Boldf("  fund <amount>\n")
	out.Normf("    Fund your balance.\n")
	out.Valuf("    celestium fund 1000000000\n")
	out.Normf("\n")

	out.Boldf("  list assets|owned|created [<user>]\n")
	out.Normf("    List assets, optionally scoped to an owner or creator.\n")
	out.Valuf("    celestium list owned ada\n")
	out.Normf("\n")

	out.Boldf("  show <asset>\n")
	out.Normf("    Show an asset and its operations.\n")
	out.Valuf("    celestium show asset_1\n")
	out.Normf("\n")

	out.Boldf("  balance [<user>]\n")
	out.Normf("    Show a balance (yours by default).\n")
	out.Valuf("    celestium balance\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Help) Parse(
	ctx context.Context,
	args []string,
) error {
	if len(args) > 0 {
		if r, ok := cli.Registrar[cli.CmdName(args[0])]; ok {
			c.Command = r()
		}
	}
	return nil
}

// Execute the command or return a human-friendly error.
func (c *Help) Execute(
	ctx context.Context,
) error {
	if c.Command != nil {
		c.Command.Help(ctx)
	} else {
		c.Help(ctx)
	}
	return nil
}
