// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/rpc/bank"
)

// CreateAccount - open a new account, returns its number
func (c *Client) CreateAccount(request *ledger.CreateRequest) (uint64, error) {
	arguments := bank.CreateArguments{
		CreateRequest: *request,
	}
	var reply bank.CreateReply
	if err := c.call("Bank.Create", &arguments, &reply); nil != err {
		return 0, err
	}
	return reply.AccountNumber, nil
}

// GetAccount - fetch one account
func (c *Client) GetAccount(accountNumber uint64) (*ledger.Account, error) {
	arguments := bank.AccountArguments{
		AccountNumber: accountNumber,
	}
	var reply bank.AccountReply
	if err := c.call("Bank.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Account, nil
}

// Lookup - find the single account with an address or a full name
func (c *Client) Lookup(ethereumAddress string, name string) (*ledger.Account, error) {
	arguments := bank.LookupArguments{
		EthereumAddress: ethereumAddress,
		Name:            name,
	}
	var reply bank.AccountReply
	if err := c.call("Bank.Lookup", &arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Account, nil
}

// List - one page of accounts
func (c *Client) List(start int, count int) (*bank.ListReply, error) {
	arguments := bank.ListArguments{
		Start: start,
		Count: count,
	}
	var reply bank.ListReply
	if err := c.call("Bank.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Numbers - every account number in creation order
func (c *Client) Numbers() ([]uint64, error) {
	var reply bank.NumbersReply
	if err := c.call("Bank.Numbers", &bank.NumbersArguments{}, &reply); nil != err {
		return nil, err
	}
	return reply.AccountNumbers, nil
}
