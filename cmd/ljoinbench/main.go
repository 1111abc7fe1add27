// Command ljoinbench is a thin CLI harness around the join package: it
// loads relations from CSV files, builds a Query from a clause
// specification, runs it, and logs the result count and elapsed time.
// It is a collaborator the core spec explicitly keeps out of scope
// (spec.md §1) — everything here talks to join only through its
// public API.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c := &cli.CLI{
		Name:     "ljoinbench",
		Version:  "0.1.0",
		Args:     args,
		HelpFunc: cli.BasicHelpFunc("ljoinbench"),
		Commands: map[string]cli.CommandFactory{
			"run": func() (cli.Command, error) {
				return &RunCommand{}, nil
			},
			"gen": func() (cli.Command, error) {
				return &GenCommand{}, nil
			},
		},
	}

	status, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return status
}
