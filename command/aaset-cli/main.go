// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	numeric bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "aaset-cli"
	app.Usage = "inspect and verify ordered sets from the command line"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " treat values as unsigned integers",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "show",
			Usage:     "print the ordered values of a set",
			ArgsUsage: "value... ('-' reads standard input)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "tree, t",
					Usage: " print the tree structure",
				},
			},
			Action: runShow,
		},
		{
			Name:      "check",
			Usage:     "run the structural checks over a set built from the values",
			ArgsUsage: "value... ('-' reads standard input)",
			Action:    runCheck,
		},
		{
			Name:      "rank",
			Usage:     "show the rank of values and verify the position round trip",
			ArgsUsage: "value... ('-' reads standard input)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "probe, p",
					Usage: " value to locate `VALUE`, repeatable, default probes every member",
				},
			},
			Action: runRank,
		},
		{
			Name:  "version",
			Usage: "display aaset-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// make the global flags available to the command handlers
	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			numeric: c.GlobalBool("numeric"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
