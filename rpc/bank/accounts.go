// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"strings"

	"github.com/bitmark-inc/checkbankd/fault"
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/rpc/ratelimit"
)

// Create
// ------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	ledger.CreateRequest
}

// CreateReply - result of create RPC
type CreateReply struct {
	AccountNumber uint64 `json:"accountNumber"`
}

// Create - open a new account
func (bank *Bank) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	bank.Log.Infof("Bank.Create: %+v", arguments)

	return bank.retry("Bank.Create", func() error {
		n, err := bank.Ledger.CreateAccount(&arguments.CreateRequest)
		reply.AccountNumber = n
		return err
	})
}

// Get
// ---

// AccountArguments - arguments for RPC
type AccountArguments struct {
	AccountNumber uint64 `json:"accountNumber"`
}

// AccountReply - a single account
type AccountReply struct {
	Account *ledger.Account `json:"account"`
}

// Get - fetch an account
func (bank *Bank) Get(arguments *AccountArguments, reply *AccountReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	bank.Log.Debugf("Bank.Get: %+v", arguments)

	account, err := bank.Ledger.GetAccount(arguments.AccountNumber)
	if nil != err {
		return err
	}
	reply.Account = account
	return nil
}

// Lookup
// ------

// LookupArguments - exactly one of the fields must be set
type LookupArguments struct {
	EthereumAddress string `json:"ethereumAddress"`
	Name            string `json:"name"`
}

// Lookup - find the single account matching an address or a name
func (bank *Bank) Lookup(arguments *LookupArguments, reply *AccountReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	bank.Log.Debugf("Bank.Lookup: %+v", arguments)

	address := strings.TrimSpace(arguments.EthereumAddress)
	name := strings.TrimSpace(arguments.Name)

	var account *ledger.Account
	var err error
	switch {
	case "" != address && "" == name:
		account, err = bank.Ledger.GetAccountByEthereumAddress(address)
	case "" == address && "" != name:
		account, err = bank.Ledger.GetAccountByName(name)
	default:
		return fault.ErrInvalidLookup
	}
	if nil != err {
		return err
	}
	reply.Account = account
	return nil
}

// List
// ----

// ListArguments - arguments for RPC
type ListArguments struct {
	Start int `json:"start"` // position in the account number list
	Count int `json:"count"`
}

// ListReply - a page of accounts
type ListReply struct {
	Accounts []*ledger.Account `json:"accounts"`
	Next     int               `json:"next"` // Start value for the next call
	Total    int               `json:"total"`
}

// List - accounts in creation order
func (bank *Bank) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(bank.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}
	if arguments.Start < 0 {
		return fault.ErrInvalidCount
	}

	bank.Log.Debugf("Bank.List: %+v", arguments)

	accounts, err := bank.Ledger.GetAllAccounts()
	if nil != err {
		return err
	}

	start := arguments.Start
	if start > len(accounts) {
		start = len(accounts)
	}
	end := start + arguments.Count
	if end > len(accounts) {
		end = len(accounts)
	}

	reply.Accounts = accounts[start:end]
	reply.Next = end
	reply.Total = len(accounts)
	return nil
}

// Numbers
// -------

// NumbersArguments - arguments for RPC
type NumbersArguments struct{}

// NumbersReply - all account numbers
type NumbersReply struct {
	AccountNumbers []uint64 `json:"accountNumbers"`
}

// Numbers - every allocated account number
func (bank *Bank) Numbers(arguments *NumbersArguments, reply *NumbersReply) error {
	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	numbers, err := bank.Ledger.GetAccountNumbers()
	if nil != err {
		return err
	}
	reply.AccountNumbers = numbers
	return nil
}
