package main

import (
	"os"

	"github.com/JuinSoft/Celestium/cli"
	"github.com/JuinSoft/Celestium/lib/out"

	// force initialization of commands
	_ "github.com/JuinSoft/Celestium/cli/command"
)

func main() {
	c, err := cli.New(os.Args[1:])
	if err != nil {
		out.Errof("Error: %s\n", err.Error())
		os.Exit(1)
	}

	err = c.Run()
	if err != nil {
		out.Errof("Error: %s\n", err.Error())
		os.Exit(1)
	}
}
