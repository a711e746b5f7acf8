// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/checkbankd/command/bank-cli/rpccalls"
)

// connect using the global flags
func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s  plain: %t\n", m.options.Connect, m.options.Plain)
	}

	client, err := rpccalls.NewClient(m.options, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

func checkAccountNumber(c *cli.Context) (uint64, error) {
	n := c.Uint64("account")
	if 0 == n {
		return 0, fmt.Errorf("account number is required")
	}
	return n, nil
}

func checkAmount(c *cli.Context) (int64, error) {
	amount := c.Int64("amount")
	if amount <= 0 {
		return 0, fmt.Errorf("invalid amount: %d", amount)
	}
	return amount, nil
}
