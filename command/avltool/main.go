// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	logDir  string
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "exercise AVL and unbalanced binary search trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: "",
			Usage: " log `DIR` for commands without a config file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute a Lua workload file and print the result",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Value: "",
					Usage: "*workload `FILE`",
				},
			},
			Action: runRun,
		},
		{
			Name:      "watch",
			Usage:     "re-run a Lua workload file each time it changes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Value: "",
					Usage: "*workload `FILE`",
				},
			},
			Action: runWatch,
		},
		{
			Name:      "bench",
			Usage:     "compare AVL and unbalanced trees on a random workload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 100000,
					Usage: " number of operations `N`",
				},
				cli.IntFlag{
					Name:  "keys, k",
					Value: 10000,
					Usage: " size of the key space `K`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random `SEED`",
				},
			},
			Action: runBench,
		},
		{
			Name:      "print",
			Usage:     "insert keys into an AVL tree and draw it",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "depth, d",
					Value: 0,
					Usage: " levels to draw `N` (0 = all)",
				},
				cli.BoolFlag{
					Name:  "integer, i",
					Usage: " keys are integers",
				},
			},
			Action: runPrint,
		},
		{
			Name:  "version",
			Usage: "display avltool version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			logDir:  c.GlobalString("log-directory"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
