package main

//go:generate go build -o=../../bin/random

import (
	"flag"
	"fmt"
	"os"
)

type cmd struct {
	name      string
	shortHelp string
	do        func()
	flags     *flag.FlagSet
}

var cmds = []cmd{
	packageCmd,
	codeCmd,
}

const Usage = `random generates sensor packages for the fitness tracker.

Usage: random <command> [flags]

The commands are:
	help [command]	show this help message or flags of the command
	package		random sensor packages, e.g. "RUN 5321 1.42 97", one per line
	unknown-code	workout code the tracker rejects
`

func lookup(name string) (cmd, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return cmd{}, false
}

func help(args []string) {
	if len(args) > 0 {
		if c, ok := lookup(args[0]); ok {
			fmt.Printf("%s: %s\n", c.name, c.shortHelp)
			if c.flags != nil {
				c.flags.SetOutput(os.Stdout)
				c.flags.PrintDefaults()
			}
			os.Exit(2)
		}
	}

	fmt.Print(Usage)
	os.Exit(2)
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "random: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		help(nil)
	}
	if os.Args[1] == "help" {
		help(os.Args[2:])
	}

	c, ok := lookup(os.Args[1])
	if !ok {
		_, _ = fmt.Fprintf(os.Stderr, "random: unknown command %q\n\n", os.Args[1])
		help(nil)
	}

	if c.flags != nil {
		if err := c.flags.Parse(os.Args[2:]); err != nil {
			fatalf("cannot parse arguments: %s", err)
		}
	}
	c.do()
}
