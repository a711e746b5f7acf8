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

	"github.com/bitmark-inc/checkbankd/command/bank-cli/rpccalls"
)

type metadata struct {
	options rpccalls.Options
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {

	app := cli.NewApp()
	app.Name = "bank-cli"
	app.Usage = "client for the bankd check ledger"
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
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " bankd `HOST:PORT`",
			EnvVar: "BANK_CONNECT",
		},
		cli.BoolFlag{
			Name:   "plain, p",
			Usage:  " connect without TLS",
			EnvVar: "BANK_PLAIN",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " expected SHA3-256 certificate `FINGERPRINT`",
			EnvVar: "BANK_FINGERPRINT",
		},
	}

	accountFlag := cli.Uint64Flag{
		Name:  "account, a",
		Value: 0,
		Usage: "*account `NUMBER`",
	}
	amountFlag := cli.Int64Flag{
		Name:  "amount, m",
		Value: 0,
		Usage: "*positive `AMOUNT`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "open a new account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, e",
					Value: "",
					Usage: "*ethereum `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "first, F",
					Value: "",
					Usage: "*first `NAME`",
				},
				cli.StringFlag{
					Name:  "last, L",
					Value: "",
					Usage: "*last `NAME`",
				},
				cli.StringFlag{
					Name:  "street-number",
					Value: "",
					Usage: " street `NUMBER`",
				},
				cli.StringFlag{
					Name:  "street-name",
					Value: "",
					Usage: " street `NAME`",
				},
				cli.StringFlag{
					Name:  "city",
					Value: "",
					Usage: " `CITY`",
				},
				cli.StringFlag{
					Name:  "state",
					Value: "",
					Usage: " `STATE`",
				},
				cli.StringFlag{
					Name:  "zip",
					Value: "",
					Usage: " zip `CODE`",
				},
				cli.Int64Flag{
					Name:  "balance, b",
					Value: 0,
					Usage: " initial `BALANCE`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "account",
			Usage:     "display an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runAccount,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runBalance,
		},
		{
			Name:      "deposit",
			Usage:     "credit an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag, amountFlag},
			Action:    runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "debit an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag, amountFlag},
			Action:    runWithdraw,
		},
		{
			Name:      "add-check",
			Usage:     "record a minted check against an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				accountFlag,
				cli.StringFlag{
					Name:  "check, k",
					Value: "",
					Usage: "*check `ID`",
				},
			},
			Action: runAddCheck,
		},
		{
			Name:      "lookup",
			Usage:     "find one account by ethereum address or by full name",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, e",
					Value: "",
					Usage: "+ethereum `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "+full `NAME`",
				},
			},
			Action: runLookup,
		},
		{
			Name:      "list",
			Usage:     "list accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " start `POSITION`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:   "numbers",
			Usage:  "list every account number",
			Action: runNumbers,
		},
		{
			Name:   "info",
			Usage:  "display bankd status",
			Action: runInfo,
		},
		{
			Name:      "populate",
			Usage:     "create accounts for randomly generated people",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " number of accounts `COUNT`",
				},
				cli.Int64Flag{
					Name:  "balance, b",
					Value: 1000,
					Usage: " largest initial `BALANCE`",
				},
			},
			Action: runPopulate,
		},
		{
			Name:  "version",
			Usage: "display bank-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("missing connect HOST:PORT")
		}

		c.App.Metadata["config"] = &metadata{
			options: rpccalls.Options{
				Connect:     connect,
				Plain:       c.GlobalBool("plain"),
				Fingerprint: c.GlobalString("fingerprint"),
			},
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
