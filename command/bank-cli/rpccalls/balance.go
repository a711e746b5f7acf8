// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/checkbankd/ledger"
	"github.com/bitmark-inc/checkbankd/rpc/bank"
)

// Balance - current balance of an account
func (c *Client) Balance(accountNumber uint64) (*bank.BalanceReply, error) {
	arguments := bank.AccountArguments{
		AccountNumber: accountNumber,
	}
	var reply bank.BalanceReply
	if err := c.call("Bank.Balance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Deposit - credit an account
func (c *Client) Deposit(accountNumber uint64, amount int64) (*bank.BalanceReply, error) {
	return c.adjust("Bank.Deposit", accountNumber, amount)
}

// Withdraw - debit an account
func (c *Client) Withdraw(accountNumber uint64, amount int64) (*bank.BalanceReply, error) {
	return c.adjust("Bank.Withdraw", accountNumber, amount)
}

func (c *Client) adjust(method string, accountNumber uint64, amount int64) (*bank.BalanceReply, error) {
	arguments := bank.AmountArguments{
		AccountNumber: accountNumber,
		Amount:        amount,
	}
	var reply bank.BalanceReply
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddCheck - record a minted check against an account
func (c *Client) AddCheck(accountNumber uint64, checkId string) (*bank.CheckReply, error) {
	arguments := bank.CheckArguments{
		AccountNumber: accountNumber,
		CheckId:       ledger.CheckId(checkId),
	}
	var reply bank.CheckReply
	if err := c.call("Bank.AddCheck", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
