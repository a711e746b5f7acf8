// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePerson(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i += 1 {
		person := generatePerson(r, 500)

		assert.True(t, common.IsHexAddress(person.EthereumAddress), "address")
		assert.Contains(t, firstNames, person.FirstName, "first name")
		assert.Contains(t, lastNames, person.LastName, "last name")
		assert.Contains(t, cities, person.PhysicalAddress.City, "city")
		assert.Contains(t, states, person.PhysicalAddress.State, "state")
		assert.Equal(t, 5, len(person.PhysicalAddress.ZipCode), "zip code")
		assert.NotEqual(t, "", person.PhysicalAddress.StreetNumber, "street number")
		assert.True(t, person.InitialBalance >= 0 && person.InitialBalance <= 500, "balance range")
	}
}

func TestGeneratePersonZeroBalance(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	person := generatePerson(r, 0)
	assert.Equal(t, int64(0), person.InitialBalance, "balance")
}
