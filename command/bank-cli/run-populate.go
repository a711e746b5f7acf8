// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/urfave/cli"
)

func runPopulate(c *cli.Context) error {
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}
	maximumBalance := c.Int64("balance")
	if maximumBalance < 0 {
		return fmt.Errorf("invalid balance: %d", maximumBalance)
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	type created struct {
		AccountNumber uint64 `json:"accountNumber"`
		Name          string `json:"name"`
	}
	results := make([]created, 0, count)

	for i := 0; i < count; i += 1 {
		person := generatePerson(r, maximumBalance)
		n, err := client.CreateAccount(person)
		if nil != err {
			return err
		}
		results = append(results, created{
			AccountNumber: n,
			Name:          person.FirstName + " " + person.LastName,
		})
	}

	return printJson(m.w, results)
}
