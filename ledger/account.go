// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/checkbankd/fault"
)

// PhysicalAddress - postal address of an account holder
type PhysicalAddress struct {
	StreetNumber string `json:"streetNumber"`
	StreetName   string `json:"streetName"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// CheckId - identifier of a minted check
//
// the minter may supply either a string or a number, both decode to
// the same text form
type CheckId string

// UnmarshalJSON - accept a JSON string or number
func (c *CheckId) UnmarshalJSON(s []byte) error {
	if 0 < len(s) && '"' == s[0] {
		var text string
		if err := json.Unmarshal(s, &text); nil != err {
			return err
		}
		*c = CheckId(text)
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(s))
	decoder.UseNumber()
	var n json.Number
	if err := decoder.Decode(&n); nil != err {
		return fault.ErrInvalidCheckIdentifier
	}
	*c = CheckId(n.String())
	return nil
}

func (c CheckId) String() string {
	return string(c)
}

// Account - one bank account
type Account struct {
	AccountNumber   uint64          `json:"accountNumber"`
	Balance         int64           `json:"balance"`
	EthereumAddress string          `json:"ethereumAddress"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	PhysicalAddress PhysicalAddress `json:"physicalAddress"`
	ChecksWritten   []CheckId       `json:"checksWritten"`
}

// FullName - first and last name separated by a single space
func (account *Account) FullName() string {
	return normaliseName(account.FirstName + " " + account.LastName)
}

// HasCheck - check whether a check is already recorded
func (account *Account) HasCheck(checkId CheckId) bool {
	for _, c := range account.ChecksWritten {
		if c == checkId {
			return true
		}
	}
	return false
}

// CreateRequest - details for a new account
type CreateRequest struct {
	EthereumAddress string          `json:"ethereumAddress"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	PhysicalAddress PhysicalAddress `json:"physicalAddress"`
	InitialBalance  int64           `json:"initialBalance"`
}

// collapse runs of white space
func normaliseName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
