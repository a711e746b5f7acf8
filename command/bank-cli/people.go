// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/checkbankd/ledger"
)

var (
	firstNames  = []string{"Liam", "Noah", "Oliver", "Elijah", "William", "James", "Benjamin", "Lucas", "Henry", "Alexander", "Olivia", "Emma", "Ava", "Charlotte", "Sophia", "Amelia", "Isabella", "Mia", "Evelyn", "Harper"}
	lastNames   = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Sanchez"}
	streetNames = []string{"Pleasant", "Harrison", "Woodland", "Cambridge", "Edgewood", "Devon", "Hill", "Ridge", "Benedict", "White", "Belmont", "Lincoln", "George", "Orchard", "Chapel", "Lexington", "Main", "Vinton", "Augusta", "Washington", "Cross", "Fairview", "Sunset", "Lombard", "Ivy"}
	streetTypes = []string{"Drive", "Street", "Way", "Court", "Circle", "Road", "Avenue", "Lane", "Square", "Boulevard", "Promenade", "Highway", "Parkway", "Terrace", "Place"}
	cities      = []string{"Winchestertonfieldville", "Allen", "Burbank", "Lewisville", "Boulder", "Vista", "Las Cruces", "Broken Arrow", "Woodbridge", "Evansville", "Pearland", "Cambridge", "Downey", "Vancouver", "Oceanside", "Sunnyvale", "Springfield", "Salem", "Clarksville"}
	states      = []string{"AK", "AZ", "TN", "CA", "DE", "ID", "KY", "MA", "NE", "VT", "ME", "FL", "NY", "NJ", "MI", "AL", "TX", "SD"}
)

func randomEntry(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}

// a random person with a random ethereum address and an initial
// balance in [0, maximumBalance]
func generatePerson(r *rand.Rand, maximumBalance int64) *ledger.CreateRequest {
	var address common.Address
	r.Read(address[:])

	balance := int64(0)
	if maximumBalance > 0 {
		balance = r.Int63n(maximumBalance + 1)
	}

	return &ledger.CreateRequest{
		EthereumAddress: address.Hex(),
		FirstName:       randomEntry(r, firstNames),
		LastName:        randomEntry(r, lastNames),
		PhysicalAddress: ledger.PhysicalAddress{
			StreetNumber: fmt.Sprintf("%d", r.Intn(99998)+1),
			StreetName:   randomEntry(r, streetNames) + " " + randomEntry(r, streetTypes),
			City:         randomEntry(r, cities),
			State:        randomEntry(r, states),
			ZipCode:      fmt.Sprintf("%05d", r.Intn(99999)),
		},
		InitialBalance: balance,
	}
}
