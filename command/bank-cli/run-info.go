// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfoCompat()
	if nil != err {
		return err
	}

	response["_connection"] = m.options.Connect
	return printJson(m.w, response)
}
