// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/checkbankd/command/bank-cli/rpccalls"
	"github.com/bitmark-inc/checkbankd/rpc/bank"
)

func runBalance(c *cli.Context) error {
	accountNumber, err := checkAccountNumber(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(accountNumber)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runDeposit(c *cli.Context) error {
	return runAdjust(c, (*rpccalls.Client).Deposit)
}

func runWithdraw(c *cli.Context) error {
	return runAdjust(c, (*rpccalls.Client).Withdraw)
}

func runAdjust(c *cli.Context, operation func(*rpccalls.Client, uint64, int64) (*bank.BalanceReply, error)) error {
	accountNumber, err := checkAccountNumber(c)
	if nil != err {
		return err
	}
	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := operation(client, accountNumber, amount)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runAddCheck(c *cli.Context) error {
	accountNumber, err := checkAccountNumber(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddCheck(accountNumber, c.String("check"))
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}
