// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAccount(c *cli.Context) error {
	accountNumber, err := checkAccountNumber(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	account, err := client.GetAccount(accountNumber)
	if nil != err {
		return err
	}
	return printJson(m.w, account)
}

func runLookup(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	account, err := client.Lookup(c.String("address"), c.String("name"))
	if nil != err {
		return err
	}
	return printJson(m.w, account)
}

func runList(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	page, err := client.List(c.Int("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, page)
}

func runNumbers(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	numbers, err := client.Numbers()
	if nil != err {
		return err
	}
	return printJson(m.w, numbers)
}
