// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/checkbankd/ledger"
)

func runCreate(c *cli.Context) error {
	request := &ledger.CreateRequest{
		EthereumAddress: c.String("address"),
		FirstName:       c.String("first"),
		LastName:        c.String("last"),
		PhysicalAddress: ledger.PhysicalAddress{
			StreetNumber: c.String("street-number"),
			StreetName:   c.String("street-name"),
			City:         c.String("city"),
			State:        c.String("state"),
			ZipCode:      c.String("zip"),
		},
		InitialBalance: c.Int64("balance"),
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	accountNumber, err := client.CreateAccount(request)
	if nil != err {
		return err
	}

	response := struct {
		AccountNumber uint64 `json:"accountNumber"`
	}{
		AccountNumber: accountNumber,
	}
	return printJson(m.w, response)
}
